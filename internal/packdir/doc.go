// SPDX-License-Identifier: MPL-2.0

// Package packdir finds pack directories inside the repository roots listed
// by dirs.PathSet.RepoRoots.
//
// A pack lives at <root>/<namespace>/<name>. Roots are searched in the order
// given, so callers passing RepoRoots() get workspace-custom packs before
// base-custom packs before installed ones. An optional pack.toml inside the
// pack directory is decoded as its Manifest.
//
// Non-fatal problems met while scanning (unreadable directories, bad
// manifests, names that cannot be referenced) are returned as Diagnostics
// instead of being printed, so the caller decides how to render them.
package packdir
