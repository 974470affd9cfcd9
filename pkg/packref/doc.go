// SPDX-License-Identifier: MPL-2.0

// Package packref parses pack references.
//
// A pack reference addresses a pack, or a file inside or next to a pack:
//
//	[namespace@]name[$base|$workspace][/sub_path]
//
// Parsing happens in two steps. Parse performs the syntactic split into a
// RawReference. RawReference.Resolve then strips the optional scope suffix
// from the name, checks the identity charset and yields a ResolvedReference
// whose Scope tells the resolver which tree the reference lives in:
//
//   - ScopePackDir: the pack's own directory, searched across repository roots
//   - ScopeBaseSupport: <base>/support/pack/<namespace>/<name>
//   - ScopeWorkspaceSupport: <workspace>/.aipack/support/pack/<namespace>/<name>
//
// LooksLikeReference is the single textual heuristic used everywhere a
// path-like string must be classified as a reference or a plain path.
package packref
