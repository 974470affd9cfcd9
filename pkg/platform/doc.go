// SPDX-License-Identifier: MPL-2.0

// Package platform holds the operating-system name constants and the
// Windows file-naming rules consulted when pack directories are scanned.
package platform
