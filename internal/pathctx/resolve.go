// SPDX-License-Identifier: MPL-2.0

package pathctx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aipack/aipack/internal/packdir"
	"github.com/aipack/aipack/internal/session"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/types"
)

const (
	// TmpPrefix starts a path under the session's temporary directory.
	TmpPrefix = "$tmp"

	tildePrefix = "~/"
)

// Resolve maps raw to a concrete, lexically cleaned path. mode picks the
// base for plain relative paths; a non-empty explicitBase overrides it. The
// session is only consulted for $tmp paths.
func (c *PathContext) Resolve(sess session.Session, raw string, mode Mode, explicitBase types.FilesystemPath) (types.FilesystemPath, error) {
	if err := mode.Validate(); err != nil {
		return "", err
	}

	p := raw
	if rest, ok := strings.CutPrefix(p, tildePrefix); ok {
		p = fspath.JoinStr(c.homeDir, rest).String()
	}

	var (
		resolved types.FilesystemPath
		err      error
	)
	switch {
	case fspath.IsAbs(types.FilesystemPath(p)):
		resolved = types.FilesystemPath(p)
	case isTmpPath(p):
		resolved, err = c.resolveTmp(sess, raw, strings.TrimPrefix(p, TmpPrefix))
	case packref.LooksLikeReference(p):
		resolved, err = c.resolveReference(p)
	default:
		resolved, err = c.resolveRelative(raw, p, mode, explicitBase)
	}
	if err != nil {
		return "", err
	}
	return fspath.Clean(resolved), nil
}

// ResolveBase returns the directory a reference's scope points at, without
// its sub path.
func (c *PathContext) ResolveBase(ref packref.ResolvedReference) (types.FilesystemPath, error) {
	switch ref.Scope {
	case packref.ScopeBaseSupport:
		return c.paths.BaseRoot().SupportPackDir(ref.Namespace, ref.Name), nil
	case packref.ScopeWorkspaceSupport:
		marker, err := c.paths.RequireWorkspaceMarker(ref.Input)
		if err != nil {
			return "", err
		}
		return marker.SupportPackDir(ref.Namespace, ref.Name), nil
	case packref.ScopePackDir:
		pd, diags, err := packdir.First(c.paths.RepoRoots(), ref.Namespace, ref.Name)
		packdir.Log(diags)
		if err != nil {
			var nf *packdir.NotFoundError
			if errors.As(err, &nf) {
				return "", &ReferenceNotFoundError{Input: ref.Input, Searched: nf.Searched, Cause: err}
			}
			return "", fmt.Errorf("resolving %q: %w", ref.Input, err)
		}
		return pd.Path, nil
	default:
		return "", ref.Scope.Validate()
	}
}

// isTmpPath matches "$tmp" alone or followed by a separator.
func isTmpPath(p string) bool {
	rest, ok := strings.CutPrefix(p, TmpPrefix)
	return ok && (rest == "" || rest[0] == '/' || rest[0] == '\\')
}

func (c *PathContext) resolveTmp(sess session.Session, raw, rest string) (types.FilesystemPath, error) {
	marker, err := c.paths.RequireWorkspaceMarker(raw)
	if err != nil {
		return "", err
	}
	if sess.IsZero() {
		return "", &SessionRequiredError{Input: raw}
	}
	return fspath.JoinStr(marker.SessionTmpDir(sess.String()), rest), nil
}

func (c *PathContext) resolveReference(p string) (types.FilesystemPath, error) {
	ref, err := packref.ParseResolved(p)
	if err != nil {
		return "", err
	}
	base, err := c.ResolveBase(ref)
	if err != nil {
		return "", err
	}
	if ref.SubPath == "" {
		return base, nil
	}
	return fspath.JoinStr(base, ref.SubPath), nil
}

func (c *PathContext) resolveRelative(raw, p string, mode Mode, explicitBase types.FilesystemPath) (types.FilesystemPath, error) {
	if !explicitBase.IsZero() {
		return fspath.JoinStr(explicitBase, p), nil
	}
	switch mode {
	case ModeWorkspaceDir:
		root, err := c.paths.RequireWorkspaceRoot(raw)
		if err != nil {
			return "", err
		}
		return fspath.JoinStr(root, p), nil
	case ModeWorkspaceMarkerDir:
		marker, err := c.paths.RequireWorkspaceMarker(raw)
		if err != nil {
			return "", err
		}
		return marker.Join(p), nil
	default:
		return fspath.JoinStr(c.currentDir, p), nil
	}
}
