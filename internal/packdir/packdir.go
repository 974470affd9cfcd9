// SPDX-License-Identifier: MPL-2.0

package packdir

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/platform"
	"github.com/aipack/aipack/pkg/types"
)

var (
	// ErrPackNotFound is returned when no repository root holds the pack.
	ErrPackNotFound = errors.New("pack not found")

	// ErrAmbiguousPack is returned when a name without namespace matches
	// packs in more than one namespace.
	ErrAmbiguousPack = errors.New("ambiguous pack reference")
)

type (
	// PackDir is one pack directory found in a repository root.
	PackDir struct {
		Identity packref.PackIdentity
		Kind     dirs.RepoKind
		Path     types.FilesystemPath
		// Manifest is nil when the pack has no usable pack.toml.
		Manifest *Manifest
	}

	// NotFoundError wraps ErrPackNotFound and lists the paths checked.
	NotFoundError struct {
		Namespace string
		Name      string
		Searched  []types.FilesystemPath
	}

	// AmbiguousError wraps ErrAmbiguousPack.
	AmbiguousError struct {
		Name    string
		Matches []PackDir
	}
)

// Lookup returns every existing <root>/<namespace>/<name> directory in root
// order. With an empty namespace every namespace directory of every root is
// checked, in name order within a root.
func Lookup(roots []dirs.RepoRoot, namespace, name string) ([]PackDir, []Diagnostic) {
	var (
		found []PackDir
		diags []Diagnostic
	)
	for _, root := range roots {
		namespaces := []string{namespace}
		if namespace == "" {
			var scanDiags []Diagnostic
			namespaces, scanDiags = scanNames(root.Path)
			diags = append(diags, scanDiags...)
		}
		for _, ns := range namespaces {
			dir := fspath.JoinStr(root.Path, ns, name)
			if !fspath.IsDir(dir) {
				continue
			}
			pd, d := newPackDir(root.Kind, dir, packref.PackIdentity{Namespace: ns, Name: name})
			found = append(found, pd)
			diags = append(diags, d...)
		}
	}
	return found, diags
}

// First returns the highest-precedence match for namespace/name. Without a
// namespace, matches from different namespaces are ambiguous.
func First(roots []dirs.RepoRoot, namespace, name string) (PackDir, []Diagnostic, error) {
	found, diags := Lookup(roots, namespace, name)
	if len(found) == 0 {
		return PackDir{}, diags, &NotFoundError{
			Namespace: namespace,
			Name:      name,
			Searched:  searched(roots, namespace, name),
		}
	}
	if namespace == "" {
		first := found[0].Identity.Namespace
		for _, pd := range found[1:] {
			if pd.Identity.Namespace != first {
				return PackDir{}, diags, &AmbiguousError{Name: name, Matches: found}
			}
		}
	}
	return found[0], diags, nil
}

// List returns every pack in roots, ordered by root precedence, then
// namespace, then name. A non-empty namespace restricts the listing.
func List(roots []dirs.RepoRoot, namespace string) ([]PackDir, []Diagnostic) {
	var (
		packs []PackDir
		diags []Diagnostic
	)
	for _, root := range roots {
		namespaces := []string{namespace}
		if namespace == "" {
			var d []Diagnostic
			namespaces, d = scanNames(root.Path)
			diags = append(diags, d...)
		}
		for _, ns := range namespaces {
			nsDir := fspath.JoinStr(root.Path, ns)
			if !fspath.IsDir(nsDir) {
				continue
			}
			names, d := scanNames(nsDir)
			diags = append(diags, d...)
			for _, name := range names {
				pd, d := newPackDir(root.Kind, fspath.JoinStr(nsDir, name), packref.PackIdentity{Namespace: ns, Name: name})
				packs = append(packs, pd)
				diags = append(diags, d...)
			}
		}
	}
	slices.SortStableFunc(packs, comparePackDirs)
	return packs, diags
}

func comparePackDirs(a, b PackDir) int {
	return cmp.Or(
		cmp.Compare(a.Kind.Precedence(), b.Kind.Precedence()),
		cmp.Compare(a.Identity.Namespace, b.Identity.Namespace),
		cmp.Compare(a.Identity.Name, b.Identity.Name),
	)
}

// scanNames lists the subdirectories of dir that a reference can address.
func scanNames(dir types.FilesystemPath) ([]string, []Diagnostic) {
	entries, err := os.ReadDir(dir.String())
	if err != nil {
		return nil, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeScanFailed,
			Message:  fmt.Sprintf("failed to list %s", dir),
			Path:     dir.String(),
			Cause:    err,
		}}
	}

	var (
		names []string
		diags []Diagnostic
	)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := fspath.JoinStr(dir, entry.Name()).String()
		if !packref.IsValidPart(entry.Name()) {
			diags = append(diags, Diagnostic{
				Severity: SeverityInfo,
				Code:     CodeInvalidName,
				Message:  fmt.Sprintf("skipping %q: not a valid pack namespace or name", entry.Name()),
				Path:     path,
			})
			continue
		}
		if platform.IsWindowsReservedName(entry.Name()) {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeReservedName,
				Message:  fmt.Sprintf("%q is a reserved device name on Windows", entry.Name()),
				Path:     path,
			})
		}
		names = append(names, entry.Name())
	}
	return names, diags
}

func newPackDir(kind dirs.RepoKind, dir types.FilesystemPath, id packref.PackIdentity) (PackDir, []Diagnostic) {
	pd := PackDir{Identity: id, Kind: kind, Path: dir}

	m, err := ReadManifest(dir)
	switch {
	case err != nil:
		return pd, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeManifestInvalid,
			Message:  fmt.Sprintf("ignoring manifest of %s", id),
			Path:     fspath.JoinStr(dir, ManifestFileName).String(),
			Cause:    err,
		}}
	case m != nil && !m.Matches(id):
		return pd, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeManifestMismatch,
			Message:  fmt.Sprintf("ignoring manifest of %s: it declares %s@%s", id, m.Namespace, m.Name),
			Path:     fspath.JoinStr(dir, ManifestFileName).String(),
		}}
	}
	pd.Manifest = m
	return pd, nil
}

func searched(roots []dirs.RepoRoot, namespace, name string) []types.FilesystemPath {
	paths := make([]types.FilesystemPath, 0, len(roots))
	for _, root := range roots {
		if namespace == "" {
			paths = append(paths, fspath.JoinStr(root.Path, "*", name))
			continue
		}
		paths = append(paths, fspath.JoinStr(root.Path, namespace, name))
	}
	return paths
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	id := e.Name
	if e.Namespace != "" {
		id = e.Namespace + "@" + e.Name
	}
	if len(e.Searched) == 0 {
		return fmt.Sprintf("pack %s not found: no pack repository exists", id)
	}
	return fmt.Sprintf("pack %s not found in %d repository root(s)", id, len(e.Searched))
}

// Unwrap returns ErrPackNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrPackNotFound }

// Error implements the error interface for AmbiguousError.
func (e *AmbiguousError) Error() string {
	ids := make([]string, 0, len(e.Matches))
	for _, m := range e.Matches {
		if s := m.Identity.String(); !slices.Contains(ids, s) {
			ids = append(ids, s)
		}
	}
	return fmt.Sprintf("pack name %q is ambiguous (%s): add a namespace", e.Name, strings.Join(ids, ", "))
}

// Unwrap returns ErrAmbiguousPack for errors.Is() compatibility.
func (e *AmbiguousError) Unwrap() error { return ErrAmbiguousPack }
