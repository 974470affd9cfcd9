// SPDX-License-Identifier: MPL-2.0

// Package pathctx turns any path-like input into one concrete filesystem
// path.
//
// A PathContext is built once per run from the home directory, the current
// directory and the discovered dirs.PathSet, then shared read-only. Resolve
// applies these rules in order:
//
//  1. A "~/" prefix is replaced with the home directory.
//  2. An absolute path is returned as is.
//  3. A "$tmp" prefix maps to <workspace>/.aipack/.session/<session>/tmp.
//  4. A pack reference ([namespace@]name[$base|$workspace][/sub_path]) maps
//     to the pack directory or the pack's support directory.
//  5. Any other relative path is joined to the explicit base when given,
//     otherwise to the directory selected by the Mode.
//
// The result is always lexically cleaned. Resolve never requires the target
// to exist.
package pathctx
