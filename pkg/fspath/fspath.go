// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath and the few
// read-only os checks the resolver needs. Every function accepts and returns
// types.FilesystemPath so call sites never drop back to untyped strings.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aipack/aipack/pkg/types"
)

// Join wraps filepath.Join, accepting and returning types.FilesystemPath.
func Join(elem ...types.FilesystemPath) types.FilesystemPath {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return types.FilesystemPath(filepath.Join(strs...))
}

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments such as directory-name constants or reference components.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean for FilesystemPath. It is purely lexical and
// works for paths that do not exist.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// FromSlash wraps filepath.FromSlash for FilesystemPath. Converts forward
// slashes to the OS-specific path separator.
func FromSlash(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.FromSlash(string(p)))
}

// IsAbs wraps filepath.IsAbs for FilesystemPath.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// Rel wraps filepath.Rel for FilesystemPath.
func Rel(base, target types.FilesystemPath) (types.FilesystemPath, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", fmt.Errorf("computing relative path: %w", err)
	}
	return types.FilesystemPath(rel), nil
}

// Canonicalize returns the absolute path of p with every symlink resolved.
// The path must exist.
func Canonicalize(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(string(abs))
	if err != nil {
		return "", fmt.Errorf("resolving symlinks: %w", err)
	}
	return types.FilesystemPath(resolved), nil
}

// Exists reports whether anything exists at p.
func Exists(p types.FilesystemPath) bool {
	_, err := os.Stat(string(p))
	return err == nil
}

// IsDir reports whether p exists and is a directory.
func IsDir(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}

// IsFile reports whether p exists and is not a directory.
func IsFile(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && !info.IsDir()
}
