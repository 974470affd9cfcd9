// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// PathSet holds the roots of one process run: the base root and, when a
// workspace was found or given, the workspace root and its marker. A PathSet
// is immutable once built.
type PathSet struct {
	workspaceRoot types.FilesystemPath
	marker        *WorkspaceMarker
	base          BaseRoot
}

// New discovers the workspace from the current directory. Without a
// workspace it returns a base-only set; only a missing home directory or
// current directory is an error.
func New() (PathSet, error) {
	home, err := HomeDir()
	if err != nil {
		return PathSet{}, err
	}
	wd, err := CurrentDir()
	if err != nil {
		return PathSet{}, err
	}
	return Discover(home, wd)
}

// Discover is New with explicit home and start directories.
func Discover(home, start types.FilesystemPath) (PathSet, error) {
	base, err := NewBaseRoot(home)
	if err != nil {
		return PathSet{}, err
	}
	found, ok := findWorkspaceRoot(start)
	if !ok {
		return PathSet{base: base}, nil
	}
	return withCanonicalWorkspace(base, found.canonical), nil
}

// FromWorkspaceRoot builds a set rooted at an explicit workspace, bypassing
// discovery. The marker is attached even when .aipack does not exist yet.
func FromWorkspaceRoot(root types.FilesystemPath) (PathSet, error) {
	home, err := HomeDir()
	if err != nil {
		return PathSet{}, err
	}
	return FromWorkspaceRootWithHome(home, root)
}

// FromWorkspaceRootWithHome is FromWorkspaceRoot with an explicit home
// directory.
func FromWorkspaceRootWithHome(home, root types.FilesystemPath) (PathSet, error) {
	base, err := NewBaseRoot(home)
	if err != nil {
		return PathSet{}, err
	}
	return withWorkspace(base, root)
}

// BaseOnly returns a set without a workspace.
func BaseOnly(base BaseRoot) PathSet {
	return PathSet{base: base}
}

func withWorkspace(base BaseRoot, root types.FilesystemPath) (PathSet, error) {
	canonical, err := canonicalWorkspaceRoot(root)
	if err != nil {
		return PathSet{}, err
	}
	return withCanonicalWorkspace(base, canonical), nil
}

func withCanonicalWorkspace(base BaseRoot, canonical types.FilesystemPath) PathSet {
	marker := NewWorkspaceMarker(canonical)
	return PathSet{workspaceRoot: canonical, marker: &marker, base: base}
}

// BaseRoot returns the base root.
func (s PathSet) BaseRoot() BaseRoot { return s.base }

// WorkspaceRoot returns the canonical workspace root, if any.
func (s PathSet) WorkspaceRoot() (types.FilesystemPath, bool) {
	return s.workspaceRoot, s.workspaceRoot != ""
}

// WorkspaceMarker returns the workspace marker, if any.
func (s PathSet) WorkspaceMarker() (WorkspaceMarker, bool) {
	if s.marker == nil {
		return WorkspaceMarker{}, false
	}
	return *s.marker, true
}

// HasWorkspace reports whether the set carries a workspace.
func (s PathSet) HasWorkspace() bool { return s.workspaceRoot != "" }

// RequireWorkspaceRoot returns the workspace root or a WorkspaceRequiredError
// naming input.
func (s PathSet) RequireWorkspaceRoot(input string) (types.FilesystemPath, error) {
	root, ok := s.WorkspaceRoot()
	if !ok {
		return "", &WorkspaceRequiredError{Input: input, Root: RootWorkspace}
	}
	return root, nil
}

// RequireWorkspaceMarker returns the marker or a WorkspaceRequiredError
// naming input.
func (s PathSet) RequireWorkspaceMarker(input string) (WorkspaceMarker, error) {
	marker, ok := s.WorkspaceMarker()
	if !ok {
		return WorkspaceMarker{}, &WorkspaceRequiredError{Input: input, Root: RootWorkspaceMarker}
	}
	return marker, nil
}

// RepoRoots lists the pack repository roots that currently exist, in search
// precedence order. It checks the filesystem on every call.
func (s PathSet) RepoRoots() []RepoRoot {
	candidates := make([]RepoRoot, 0, 3)
	if s.marker != nil {
		candidates = append(candidates, RepoRoot{Kind: RepoWorkspaceCustom, Path: s.marker.CustomPackDir()})
	}
	candidates = append(candidates,
		RepoRoot{Kind: RepoBaseCustom, Path: s.base.CustomPackDir()},
		RepoRoot{Kind: RepoBaseInstalled, Path: s.base.InstalledPackDir()},
	)

	roots := candidates[:0]
	for _, c := range candidates {
		if fspath.IsDir(c.Path) {
			roots = append(roots, c)
		}
	}
	return roots
}

// ConfigFiles lists the config files to load, lowest priority first. The
// base config is always listed; the workspace config only when present.
func (s PathSet) ConfigFiles() []types.FilesystemPath {
	files := []types.FilesystemPath{s.base.ConfigFile()}
	if s.marker != nil {
		if wks := s.marker.ConfigFile(); fspath.IsFile(wks) {
			files = append(files, wks)
		}
	}
	return files
}
