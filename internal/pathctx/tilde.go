// SPDX-License-Identifier: MPL-2.0

package pathctx

import (
	"path/filepath"
	"strings"

	"github.com/aipack/aipack/pkg/types"
)

// PathToTilde rewrites a path under the home directory as "~/..." for
// display. Other paths are returned unchanged.
func (c *PathContext) PathToTilde(p types.FilesystemPath) string {
	home := c.homeDir.String()
	s := p.String()
	if s == home {
		return "~"
	}
	rest, ok := strings.CutPrefix(s, homePrefix(home))
	if !ok || rest == "" {
		return s
	}
	return tildePrefix + filepath.ToSlash(rest)
}

// TildeToPath is the inverse of PathToTilde.
func (c *PathContext) TildeToPath(s string) types.FilesystemPath {
	if s == "~" {
		return c.homeDir
	}
	rest, ok := strings.CutPrefix(s, tildePrefix)
	if !ok {
		return types.FilesystemPath(s)
	}
	return types.FilesystemPath(homePrefix(c.homeDir.String()) + filepath.FromSlash(rest))
}

func homePrefix(home string) string {
	return strings.TrimSuffix(home, string(filepath.Separator)) + string(filepath.Separator)
}
