// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for aip.
//
// The commands are thin: each builds a pathctx.PathContext for the current
// directory, loads the merged configuration and delegates to the library
// packages. Failures are classified into an issue catalog entry and a process
// exit code by classifyError.
package cmd
