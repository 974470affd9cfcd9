// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/platform"
	"github.com/aipack/aipack/pkg/types"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	got := fspath.Join(types.FilesystemPath("home"), types.FilesystemPath("user"))
	want := types.FilesystemPath(filepath.Join("home", "user"))
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestJoinStr_MultipleSegments(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath(".aipack-base"), "pack", "installed", "ns", "name")
	want := types.FilesystemPath(filepath.Join(".aipack-base", "pack", "installed", "ns", "name"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	got := fspath.Dir(types.FilesystemPath("home/user/file.txt"))
	want := types.FilesystemPath(filepath.Dir("home/user/file.txt"))
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("."))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	wantRaw, _ := filepath.Abs(".")
	if got != types.FilesystemPath(wantRaw) {
		t.Errorf("Abs() = %q, want %q", got, wantRaw)
	}
}

func TestClean_NonExistent(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath("does/not/../exist/./file.txt"))
	want := types.FilesystemPath(filepath.Join("does", "exist", "file.txt"))
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestIsAbs(t *testing.T) {
	t.Parallel()

	// filepath.IsAbs() is OS-specific: on Windows, paths need a drive letter.
	absPath := types.FilesystemPath("/absolute/path")
	if runtime.GOOS == platform.Windows {
		absPath = types.FilesystemPath(`C:\absolute\path`)
	}
	if !fspath.IsAbs(absPath) {
		t.Error("IsAbs() = false for absolute path")
	}
	if fspath.IsAbs(types.FilesystemPath("relative/path")) {
		t.Error("IsAbs() = true for relative path")
	}
}

func TestExistenceChecks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := types.FilesystemPath(dir)
	f := types.FilesystemPath(file)
	missing := fspath.JoinStr(d, "missing")

	if !fspath.IsDir(d) || fspath.IsDir(f) || fspath.IsDir(missing) {
		t.Error("IsDir() returned unexpected results")
	}
	if !fspath.IsFile(f) || fspath.IsFile(d) || fspath.IsFile(missing) {
		t.Error("IsFile() returned unexpected results")
	}
	if !fspath.Exists(d) || !fspath.Exists(f) || fspath.Exists(missing) {
		t.Error("Exists() returned unexpected results")
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := fspath.Canonicalize(types.FilesystemPath(filepath.Join(dir, "sub", "..")))
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if got != types.FilesystemPath(real) {
		t.Errorf("Canonicalize() = %q, want %q", got, real)
	}

	if _, err := fspath.Canonicalize(types.FilesystemPath(filepath.Join(dir, "missing"))); err == nil {
		t.Error("Canonicalize() on a missing path returned nil error")
	}
}

func TestRel(t *testing.T) {
	t.Parallel()

	got, err := fspath.Rel(types.FilesystemPath("/a/b"), types.FilesystemPath("/a/b/c/d"))
	if err != nil {
		t.Fatalf("Rel() error = %v", err)
	}
	if got != types.FilesystemPath(filepath.Join("c", "d")) {
		t.Errorf("Rel() = %q", got)
	}
}
