// SPDX-License-Identifier: MPL-2.0

// Package pathglob expands glob patterns whose literal prefix may use any
// form PathContext.Resolve accepts: "~/", "$tmp" or a pack reference.
package pathglob

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/internal/session"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/types"
)

// ErrInvalidPattern is the sentinel error wrapped by InvalidPatternError.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// InvalidPatternError is returned for patterns that cannot be expanded.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap returns ErrInvalidPattern for errors.Is() compatibility.
func (e *InvalidPatternError) Unwrap() error { return ErrInvalidPattern }

// Expand resolves each pattern and returns the regular files it matches.
// Matches of one pattern are sorted; patterns keep their order and a file
// matched twice is reported once. Patterns without wildcards yield their
// resolved path when it is an existing file.
func Expand(pc *pathctx.PathContext, sess session.Session, patterns []string, mode pathctx.Mode, base types.FilesystemPath) ([]types.FilesystemPath, error) {
	var out []types.FilesystemPath
	seen := make(map[types.FilesystemPath]bool)

	for _, pattern := range patterns {
		matches, err := expandOne(pc, sess, pattern, mode, base)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func expandOne(pc *pathctx.PathContext, sess session.Session, pattern string, mode pathctx.Mode, base types.FilesystemPath) ([]types.FilesystemPath, error) {
	if !packref.HasWildcard(pattern) {
		p, err := pc.Resolve(sess, pattern, mode, base)
		if err != nil {
			return nil, err
		}
		if !fspath.IsFile(p) {
			return nil, nil
		}
		return []types.FilesystemPath{p}, nil
	}

	prefix, tail := doublestar.SplitPattern(pattern)
	if packref.LooksLikeReference(pattern) && !packref.LooksLikeReference(prefix) {
		return nil, &InvalidPatternError{Pattern: pattern, Reason: "a pack reference cannot contain wildcards"}
	}
	if !doublestar.ValidatePattern(tail) {
		return nil, &InvalidPatternError{Pattern: pattern, Reason: "malformed wildcard"}
	}

	root, err := pc.Resolve(sess, prefix, mode, base)
	if err != nil {
		return nil, err
	}
	if !fspath.IsDir(root) {
		return nil, nil
	}

	rel, err := doublestar.Glob(os.DirFS(root.String()), tail, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	slices.Sort(rel)

	matches := make([]types.FilesystemPath, 0, len(rel))
	for _, r := range rel {
		matches = append(matches, fspath.JoinStr(root, r))
	}
	return matches, nil
}
