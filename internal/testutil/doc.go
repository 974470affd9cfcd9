// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail the test
// on setup errors instead of returning them.
//
// Common helpers include environment and directory management (MustSetenv,
// SetHomeDir, MustChdir), file creation (MustMkdirAll, MustWriteFile) and
// Layout, which builds a throwaway home directory and workspace tree.
package testutil
