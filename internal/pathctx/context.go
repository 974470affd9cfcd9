// SPDX-License-Identifier: MPL-2.0

package pathctx

import (
	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

type (
	// PathContext holds the directories every resolution starts from. It is
	// never modified after construction and may be shared between goroutines.
	PathContext struct {
		homeDir    types.FilesystemPath
		currentDir types.FilesystemPath
		paths      dirs.PathSet
	}

	// Options configures NewWithOptions. Zero fields fall back to the
	// process values.
	Options struct {
		HomeDir    types.FilesystemPath
		CurrentDir types.FilesystemPath
		// WorkspaceRoot bypasses discovery when set.
		WorkspaceRoot types.FilesystemPath
		// NoWorkspace builds a base-only context without discovery.
		NoWorkspace bool
	}
)

// New builds the context for this process: home and current directory from
// the OS, workspace discovered upward from the current directory.
func New() (*PathContext, error) {
	return NewWithOptions(Options{})
}

// NewWithOptions builds a context from explicit directories.
func NewWithOptions(opts Options) (*PathContext, error) {
	home := opts.HomeDir
	if home.IsZero() {
		var err error
		if home, err = dirs.HomeDir(); err != nil {
			return nil, err
		}
	}
	cwd := opts.CurrentDir
	if cwd.IsZero() {
		var err error
		if cwd, err = dirs.CurrentDir(); err != nil {
			return nil, err
		}
	}
	abs, err := fspath.Abs(cwd)
	if err != nil {
		return nil, &dirs.UnresolvablePathError{Path: cwd, Cause: err}
	}
	cwd = abs

	var paths dirs.PathSet
	switch {
	case !opts.WorkspaceRoot.IsZero():
		paths, err = dirs.FromWorkspaceRootWithHome(home, opts.WorkspaceRoot)
	case opts.NoWorkspace:
		var base dirs.BaseRoot
		base, err = dirs.NewBaseRoot(home)
		paths = dirs.BaseOnly(base)
	default:
		paths, err = dirs.Discover(home, cwd)
	}
	if err != nil {
		return nil, err
	}

	return &PathContext{
		// The base root is always <home>/.aipack-base.
		homeDir:    fspath.Dir(paths.BaseRoot().Path()),
		currentDir: cwd,
		paths:      paths,
	}, nil
}

// HomeDir returns the absolute home directory.
func (c *PathContext) HomeDir() types.FilesystemPath { return c.homeDir }

// CurrentDir returns the absolute working directory captured at construction.
func (c *PathContext) CurrentDir() types.FilesystemPath { return c.currentDir }

// Paths returns the context's path set.
func (c *PathContext) Paths() dirs.PathSet { return c.paths }

// WorkspaceRoot returns the canonical workspace root, if any.
func (c *PathContext) WorkspaceRoot() (types.FilesystemPath, bool) {
	return c.paths.WorkspaceRoot()
}
