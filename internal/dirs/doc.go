// SPDX-License-Identifier: MPL-2.0

// Package dirs knows where aipack keeps things on disk.
//
// Two roots exist. The base root (~/.aipack-base) is shared by every
// workspace of a user. The workspace marker (<workspace>/.aipack) belongs to
// one project and is found by walking up from the current directory.
// BaseRoot and WorkspaceMarker are distinct types so a call site always
// states which root it joins against.
//
// PathSet bundles the base root with the optional workspace and derives the
// ordered pack repository roots and config files from them:
//
//	~/.aipack-base/
//	  config.toml
//	  pack/custom/<ns>/<name>/
//	  pack/installed/<ns>/<name>/
//	  pack/download/
//	  support/pack/<ns>/<name>/
//	<workspace>/.aipack/
//	  config.toml
//	  pack/custom/<ns>/<name>/
//	  support/pack/<ns>/<name>/
//	  .session/<session>/tmp/
//
// Nothing in this package creates directories; existence is only checked.
package dirs
