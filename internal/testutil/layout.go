// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// Layout is a throwaway directory tree with a home directory and a project
// directory side by side. Both paths are canonical.
//
//	<tmp>/home/.aipack-base/...
//	<tmp>/project/.aipack/...
type Layout struct {
	Home    string
	Project string
}

// NewLayout creates empty home and project directories.
func NewLayout(t testing.TB) Layout {
	t.Helper()
	root := MustTempDir(t)
	l := Layout{
		Home:    filepath.Join(root, "home"),
		Project: filepath.Join(root, "project"),
	}
	MustMkdirAll(t, l.Home)
	MustMkdirAll(t, l.Project)
	return l
}

// Base returns <home>/.aipack-base.
func (l Layout) Base() string { return filepath.Join(l.Home, ".aipack-base") }

// Marker returns <project>/.aipack.
func (l Layout) Marker() string { return filepath.Join(l.Project, ".aipack") }

// InitWorkspace creates the project's .aipack directory.
func (l Layout) InitWorkspace(t testing.TB) {
	t.Helper()
	MustMkdirAll(t, l.Marker())
}

// InitBase creates the base root directory.
func (l Layout) InitBase(t testing.TB) {
	t.Helper()
	MustMkdirAll(t, l.Base())
}

// AddWorkspacePack creates <project>/.aipack/pack/custom/<ns>/<name>.
func (l Layout) AddWorkspacePack(t testing.TB, namespace, name string) string {
	t.Helper()
	return mkdir(t, l.Marker(), "pack", "custom", namespace, name)
}

// AddBaseCustomPack creates <home>/.aipack-base/pack/custom/<ns>/<name>.
func (l Layout) AddBaseCustomPack(t testing.TB, namespace, name string) string {
	t.Helper()
	return mkdir(t, l.Base(), "pack", "custom", namespace, name)
}

// AddInstalledPack creates <home>/.aipack-base/pack/installed/<ns>/<name>.
func (l Layout) AddInstalledPack(t testing.TB, namespace, name string) string {
	t.Helper()
	return mkdir(t, l.Base(), "pack", "installed", namespace, name)
}

func mkdir(t testing.TB, base string, elem ...string) string {
	t.Helper()
	dir := filepath.Join(append([]string{base}, elem...)...)
	MustMkdirAll(t, dir)
	return dir
}
