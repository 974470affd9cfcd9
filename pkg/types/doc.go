// SPDX-License-Identifier: MPL-2.0

// Package types defines the small value types shared by the path resolver,
// the pack lookup and the CLI layer.
//
// This package is a leaf dependency: it imports only the standard library.
package types
