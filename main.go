// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/aipack/aipack/cmd/aip"

func main() {
	cmd.Execute()
}
