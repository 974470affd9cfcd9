// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/aipack/aipack/pkg/platform"
)

// SetHomeDir points the platform's home environment variable at dir and
// returns a cleanup function restoring the original value.
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
//
// Tests calling it must not run in parallel.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()
	return MustSetenv(t, platform.HomeEnvVar(runtime.GOOS), dir)
}
