// SPDX-License-Identifier: MPL-2.0

package packdir_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/internal/packdir"
	"github.com/aipack/aipack/internal/testutil"
	"github.com/aipack/aipack/pkg/types"
)

func repoRoots(t *testing.T, l testutil.Layout) []dirs.RepoRoot {
	t.Helper()
	ps, err := dirs.FromWorkspaceRootWithHome(types.FilesystemPath(l.Home), types.FilesystemPath(l.Project))
	if err != nil {
		t.Fatalf("FromWorkspaceRootWithHome() error = %v", err)
	}
	return ps.RepoRoots()
}

func TestFirst_OnlyInstalled(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	l.InitWorkspace(t)
	want := l.AddInstalledPack(t, "ns", "pack")

	got, _, err := packdir.First(repoRoots(t, l), "ns", "pack")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got.Path.String() != want {
		t.Errorf("First().Path = %q, want %q", got.Path, want)
	}
	if got.Kind != dirs.RepoBaseInstalled {
		t.Errorf("First().Kind = %q, want %q", got.Kind, dirs.RepoBaseInstalled)
	}
}

func TestFirst_Precedence(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	l.InitWorkspace(t)
	l.AddInstalledPack(t, "ns", "pack")
	l.AddBaseCustomPack(t, "ns", "pack")
	want := l.AddWorkspacePack(t, "ns", "pack")

	got, _, err := packdir.First(repoRoots(t, l), "ns", "pack")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got.Path.String() != want {
		t.Errorf("First().Path = %q, want %q", got.Path, want)
	}

	all, _ := packdir.Lookup(repoRoots(t, l), "ns", "pack")
	wantKinds := []dirs.RepoKind{dirs.RepoWorkspaceCustom, dirs.RepoBaseCustom, dirs.RepoBaseInstalled}
	if len(all) != len(wantKinds) {
		t.Fatalf("Lookup() returned %d dirs, want %d", len(all), len(wantKinds))
	}
	for i, pd := range all {
		if pd.Kind != wantKinds[i] {
			t.Errorf("Lookup()[%d].Kind = %q, want %q", i, pd.Kind, wantKinds[i])
		}
	}
}

func TestFirst_NotFound(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	l.AddBaseCustomPack(t, "ns", "other")

	_, _, err := packdir.First(repoRoots(t, l), "ns", "pack")
	if !errors.Is(err, packdir.ErrPackNotFound) {
		t.Fatalf("First() error = %v, want ErrPackNotFound", err)
	}
	var nf *packdir.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error is not *NotFoundError: %T", err)
	}
	want := filepath.Join(l.Base(), "pack", "custom", "ns", "pack")
	if len(nf.Searched) != 1 || nf.Searched[0].String() != want {
		t.Errorf("Searched = %v, want [%s]", nf.Searched, want)
	}
}

func TestFirst_WithoutNamespace(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	want := l.AddBaseCustomPack(t, "alpha", "tool")

	got, _, err := packdir.First(repoRoots(t, l), "", "tool")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got.Path.String() != want || got.Identity.Namespace != "alpha" {
		t.Errorf("First() = %+v, want alpha@tool at %q", got, want)
	}

	l.AddInstalledPack(t, "beta", "tool")
	_, _, err = packdir.First(repoRoots(t, l), "", "tool")
	if !errors.Is(err, packdir.ErrAmbiguousPack) {
		t.Fatalf("First() error = %v, want ErrAmbiguousPack", err)
	}
}

func TestFirst_SameNamespaceInSeveralRootsIsNotAmbiguous(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	want := l.AddBaseCustomPack(t, "alpha", "tool")
	l.AddInstalledPack(t, "alpha", "tool")

	got, _, err := packdir.First(repoRoots(t, l), "", "tool")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got.Path.String() != want {
		t.Errorf("First().Path = %q, want %q", got.Path, want)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	l.InitWorkspace(t)
	l.AddInstalledPack(t, "zed", "a")
	l.AddInstalledPack(t, "abc", "b")
	l.AddWorkspacePack(t, "mine", "c")
	l.AddBaseCustomPack(t, "abc", "a")
	// Not addressable by a reference.
	testutil.MustMkdirAll(t, filepath.Join(l.Base(), "pack", "installed", "1bad", "x"))

	packs, diags := packdir.List(repoRoots(t, l), "")

	want := []string{"mine@c", "abc@a", "abc@b", "zed@a"}
	if len(packs) != len(want) {
		t.Fatalf("List() returned %d packs, want %d: %+v", len(packs), len(want), packs)
	}
	for i, pd := range packs {
		if pd.Identity.String() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, pd.Identity, want[i])
		}
	}

	var sawInvalid bool
	for _, d := range diags {
		if d.Code == packdir.CodeInvalidName {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Errorf("List() diagnostics = %+v, want a %s entry", diags, packdir.CodeInvalidName)
	}

	filtered, _ := packdir.List(repoRoots(t, l), "abc")
	if len(filtered) != 2 {
		t.Errorf("List(abc) returned %d packs, want 2", len(filtered))
	}
}

func TestManifest(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	good := l.AddBaseCustomPack(t, "ns", "good")
	testutil.MustWriteFile(t, filepath.Join(good, "pack.toml"), "namespace = \"ns\"\nname = \"good\"\nversion = \"1.2.0\"\n")
	liar := l.AddBaseCustomPack(t, "ns", "liar")
	testutil.MustWriteFile(t, filepath.Join(liar, "pack.toml"), "name = \"other\"\n")
	broken := l.AddBaseCustomPack(t, "ns", "broken")
	testutil.MustWriteFile(t, filepath.Join(broken, "pack.toml"), "version = \n")

	packs, diags := packdir.List(repoRoots(t, l), "ns")
	byName := map[string]packdir.PackDir{}
	for _, pd := range packs {
		byName[pd.Identity.Name] = pd
	}

	if m := byName["good"].Manifest; m == nil || m.Version != "1.2.0" {
		t.Errorf("good manifest = %+v, want version 1.2.0", m)
	}
	if byName["liar"].Manifest != nil {
		t.Error("mismatched manifest was not ignored")
	}
	if byName["broken"].Manifest != nil {
		t.Error("broken manifest was not ignored")
	}

	codes := map[string]bool{}
	for _, d := range diags {
		codes[d.Code] = true
	}
	for _, code := range []string{packdir.CodeManifestMismatch, packdir.CodeManifestInvalid} {
		if !codes[code] {
			t.Errorf("missing diagnostic %s in %+v", code, diags)
		}
	}
}

func TestReadManifest_Missing(t *testing.T) {
	t.Parallel()

	m, err := packdir.ReadManifest(types.FilesystemPath(t.TempDir()))
	if err != nil || m != nil {
		t.Errorf("ReadManifest() = (%v, %v), want (nil, nil)", m, err)
	}
}
