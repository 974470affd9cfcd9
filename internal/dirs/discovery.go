// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"log/slog"

	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// FindWorkspaceRoot walks from start towards the filesystem root and returns
// the nearest directory holding a usable .aipack marker. A candidate counts
// only when its marker is a directory and a workspace path set can be built
// on it; a failing candidate does not stop the walk.
func FindWorkspaceRoot(start types.FilesystemPath) (types.FilesystemPath, bool) {
	found, ok := findWorkspaceRoot(start)
	return found.walked, ok
}

// workspaceCandidate is a discovered root as reached by the walk and in its
// canonical form.
type workspaceCandidate struct {
	walked    types.FilesystemPath
	canonical types.FilesystemPath
}

func findWorkspaceRoot(start types.FilesystemPath) (workspaceCandidate, bool) {
	candidate, err := fspath.Abs(start)
	if err != nil {
		slog.Debug("cannot start workspace discovery", "start", start, "error", err)
		return workspaceCandidate{}, false
	}
	candidate = fspath.Clean(candidate)

	for {
		if fspath.IsDir(fspath.JoinStr(candidate, MarkerDirName)) {
			canonical, err := canonicalWorkspaceRoot(candidate)
			if err == nil {
				return workspaceCandidate{walked: candidate, canonical: canonical}, true
			}
			slog.Debug("skipping workspace candidate", "dir", candidate, "error", err)
		}

		parent := fspath.Dir(candidate)
		if parent == candidate {
			return workspaceCandidate{}, false
		}
		candidate = parent
	}
}

// canonicalWorkspaceRoot checks that root exists and returns its canonical
// form.
func canonicalWorkspaceRoot(root types.FilesystemPath) (types.FilesystemPath, error) {
	if err := root.Validate(); err != nil {
		return "", &UnresolvablePathError{Path: root, Cause: err}
	}
	if !fspath.Exists(root) {
		return "", &UnresolvablePathError{Path: root}
	}
	canonical, err := fspath.Canonicalize(root)
	if err != nil {
		return "", &UnresolvablePathError{Path: root, Cause: err}
	}
	return canonical, nil
}
