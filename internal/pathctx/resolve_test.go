// SPDX-License-Identifier: MPL-2.0

package pathctx_test

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/internal/packdir"
	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/internal/session"
	"github.com/aipack/aipack/internal/testutil"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/types"
)

var allModes = []pathctx.Mode{pathctx.ModeCurrentDir, pathctx.ModeWorkspaceDir, pathctx.ModeWorkspaceMarkerDir}

func fsPath(s string) types.FilesystemPath { return types.FilesystemPath(s) }

// newWorkspaceContext returns a context whose cwd is <project>/src.
func newWorkspaceContext(t *testing.T) (*pathctx.PathContext, testutil.Layout) {
	t.Helper()
	l := testutil.NewLayout(t)
	l.InitWorkspace(t)
	cwd := filepath.Join(l.Project, "src")
	testutil.MustMkdirAll(t, cwd)

	pc, err := pathctx.NewWithOptions(pathctx.Options{
		HomeDir:       fsPath(l.Home),
		CurrentDir:    fsPath(cwd),
		WorkspaceRoot: fsPath(l.Project),
	})
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	return pc, l
}

func newBaseOnlyContext(t *testing.T) (*pathctx.PathContext, testutil.Layout) {
	t.Helper()
	l := testutil.NewLayout(t)
	pc, err := pathctx.NewWithOptions(pathctx.Options{
		HomeDir:     fsPath(l.Home),
		CurrentDir:  fsPath(l.Project),
		NoWorkspace: true,
	})
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	return pc, l
}

func TestResolve_AbsoluteIsUnchanged(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	abs := filepath.Join(l.Project, "a", "b.txt")
	messy := filepath.Join(l.Project, "a") + string(filepath.Separator) + "." + string(filepath.Separator) + "b.txt"

	for _, mode := range allModes {
		for _, base := range []types.FilesystemPath{"", fsPath(l.Home)} {
			for _, in := range []string{abs, messy} {
				got, err := pc.Resolve(session.Session{}, in, mode, base)
				if err != nil {
					t.Fatalf("Resolve(%q, %s, %q) error = %v", in, mode, base, err)
				}
				if got.String() != abs {
					t.Errorf("Resolve(%q, %s, %q) = %q, want %q", in, mode, base, got, abs)
				}
			}
		}
	}
}

func TestResolve_Tilde(t *testing.T) {
	t.Parallel()

	pc, l := newBaseOnlyContext(t)
	want := filepath.Join(l.Home, ".aipack-base", "x")

	// Workspace modes need no workspace once the input is absolute.
	for _, mode := range allModes {
		got, err := pc.Resolve(session.Session{}, "~/.aipack-base/x", mode, "")
		if err != nil {
			t.Fatalf("Resolve(~/.aipack-base/x, %s) error = %v", mode, err)
		}
		if got.String() != want {
			t.Errorf("Resolve(~/.aipack-base/x, %s) = %q, want %q", mode, got, want)
		}
	}
}

func TestResolve_RelativeModes(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	explicit := filepath.Join(l.Home, "elsewhere")

	tests := []struct {
		name string
		mode pathctx.Mode
		base types.FilesystemPath
		want string
	}{
		{"cwd", pathctx.ModeCurrentDir, "", filepath.Join(l.Project, "src", "rel", "file")},
		{"workspace", pathctx.ModeWorkspaceDir, "", filepath.Join(l.Project, "rel", "file")},
		{"marker", pathctx.ModeWorkspaceMarkerDir, "", filepath.Join(l.Marker(), "rel", "file")},
		{"explicit base wins", pathctx.ModeWorkspaceDir, fsPath(explicit), filepath.Join(explicit, "rel", "file")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pc.Resolve(session.Session{}, "rel/file", tt.mode, tt.base)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_LexicalClean(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)

	got, err := pc.Resolve(session.Session{}, "a/./b/../../missing/../c.txt", pathctx.ModeWorkspaceDir, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := filepath.Join(l.Project, "c.txt"); got.String() != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolve_WorkspaceRequired(t *testing.T) {
	t.Parallel()

	pc, _ := newBaseOnlyContext(t)
	sess := session.MustNew()

	tests := []struct {
		input    string
		mode     pathctx.Mode
		wantRoot dirs.RootName
	}{
		{"relative/file", pathctx.ModeWorkspaceDir, dirs.RootWorkspace},
		{"relative/file", pathctx.ModeWorkspaceMarkerDir, dirs.RootWorkspaceMarker},
		{"$tmp/x.txt", pathctx.ModeCurrentDir, dirs.RootWorkspaceMarker},
		{"pro@coder$workspace/so/data.md", pathctx.ModeCurrentDir, dirs.RootWorkspaceMarker},
	}
	for _, tt := range tests {
		got, err := pc.Resolve(sess, tt.input, tt.mode, "")
		if !errors.Is(err, dirs.ErrWorkspaceRequired) {
			t.Errorf("Resolve(%q, %s) = (%q, %v), want ErrWorkspaceRequired", tt.input, tt.mode, got, err)
			continue
		}
		var wsErr *dirs.WorkspaceRequiredError
		if !errors.As(err, &wsErr) || wsErr.Input != tt.input || wsErr.Root != tt.wantRoot {
			t.Errorf("Resolve(%q) error = %#v, want input %q and root %q", tt.input, err, tt.input, tt.wantRoot)
		}
	}

	// Current-dir mode never needs a workspace.
	if _, err := pc.Resolve(sess, "relative/file", pathctx.ModeCurrentDir, ""); err != nil {
		t.Errorf("Resolve(relative/file, cwd) error = %v", err)
	}
}

func TestResolve_TmpIsolatedPerSession(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	a, b := session.MustNew(), session.MustNew()

	gotA, err := pc.Resolve(a, "$tmp/sub/file.txt", pathctx.ModeCurrentDir, "")
	if err != nil {
		t.Fatalf("Resolve(session A) error = %v", err)
	}
	gotB, err := pc.Resolve(b, "$tmp/sub/file.txt", pathctx.ModeCurrentDir, "")
	if err != nil {
		t.Fatalf("Resolve(session B) error = %v", err)
	}

	wantA := filepath.Join(l.Marker(), ".session", a.String(), "tmp", "sub", "file.txt")
	if gotA.String() != wantA {
		t.Errorf("Resolve(session A) = %q, want %q", gotA, wantA)
	}
	if gotA == gotB {
		t.Fatalf("sessions share %q", gotA)
	}
	if strings.ReplaceAll(gotB.String(), b.String(), a.String()) != gotA.String() {
		t.Errorf("paths differ beyond the session segment: %q vs %q", gotA, gotB)
	}

	root, err := pc.Resolve(a, "$tmp", pathctx.ModeCurrentDir, "")
	if err != nil {
		t.Fatalf("Resolve($tmp) error = %v", err)
	}
	if want := filepath.Join(l.Marker(), ".session", a.String(), "tmp"); root.String() != want {
		t.Errorf("Resolve($tmp) = %q, want %q", root, want)
	}
}

func TestResolve_TmpNeedsSession(t *testing.T) {
	t.Parallel()

	pc, _ := newWorkspaceContext(t)

	_, err := pc.Resolve(session.Session{}, "$tmp/file", pathctx.ModeCurrentDir, "")
	if !errors.Is(err, pathctx.ErrSessionRequired) {
		t.Errorf("Resolve() error = %v, want ErrSessionRequired", err)
	}
}

func TestResolve_TmpPrefixNeedsSeparator(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)

	got, err := pc.Resolve(session.Session{}, "$tmpfile", pathctx.ModeWorkspaceDir, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := filepath.Join(l.Project, "$tmpfile"); got.String() != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolve_PackReference(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	custom := l.AddBaseCustomPack(t, "pro", "rust10x")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pack dir with sub path",
			input: "pro@rust10x/guide/base/some.md",
			want:  filepath.Join(custom, "guide", "base", "some.md"),
		},
		{
			name:  "pack dir",
			input: "pro@rust10x",
			want:  custom,
		},
		{
			name:  "namespace-less pack dir",
			input: "rust10x/readme.md",
			want:  filepath.Join(custom, "readme.md"),
		},
		{
			name:  "workspace support",
			input: "pro@coder$workspace/so/data.md",
			want:  filepath.Join(l.Marker(), "support", "pack", "pro", "coder", "so", "data.md"),
		},
		{
			name:  "base support is a pure join",
			input: "pro@missing$base/cache",
			want:  filepath.Join(l.Base(), "support", "pack", "pro", "missing", "cache"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// "rust10x/readme.md" has no '@' and resolves as a plain
			// relative path; force the reference path through ResolveBase.
			if !packref.LooksLikeReference(tt.input) {
				ref, err := packref.ParseResolved(tt.input)
				if err != nil {
					t.Fatalf("ParseResolved() error = %v", err)
				}
				base, err := pc.ResolveBase(ref)
				if err != nil {
					t.Fatalf("ResolveBase() error = %v", err)
				}
				if got := filepath.Join(base.String(), filepath.FromSlash(ref.SubPath)); got != tt.want {
					t.Errorf("ResolveBase() + sub path = %q, want %q", got, tt.want)
				}
				return
			}

			got, err := pc.Resolve(session.Session{}, tt.input, pathctx.ModeWorkspaceDir, "")
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveBase_OnlyInstalled(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	want := l.AddInstalledPack(t, "ns", "pack")

	ref, err := packref.ParseResolved("ns@pack")
	if err != nil {
		t.Fatalf("ParseResolved() error = %v", err)
	}
	got, err := pc.ResolveBase(ref)
	if err != nil {
		t.Fatalf("ResolveBase() error = %v", err)
	}
	if got.String() != want {
		t.Errorf("ResolveBase() = %q, want %q", got, want)
	}
}

func TestResolve_ReferenceNotFound(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	l.AddWorkspacePack(t, "ns", "other")
	l.AddInstalledPack(t, "ns", "other")

	_, err := pc.Resolve(session.Session{}, "ns@pack/file.md", pathctx.ModeCurrentDir, "")
	if !errors.Is(err, pathctx.ErrReferenceNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrReferenceNotFound", err)
	}
	if !errors.Is(err, packdir.ErrPackNotFound) {
		t.Errorf("Resolve() error = %v, want it to wrap ErrPackNotFound", err)
	}
	var nf *pathctx.ReferenceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error is not *ReferenceNotFoundError: %T", err)
	}
	if nf.Input != "ns@pack/file.md" || len(nf.Searched) != 2 {
		t.Errorf("ReferenceNotFoundError = %+v, want input ns@pack/file.md and 2 searched roots", nf)
	}
}

func TestResolve_MalformedReference(t *testing.T) {
	t.Parallel()

	pc, _ := newWorkspaceContext(t)

	for _, in := range []string{"a@b@c", "@name", "ns@", "ns@9pack/x", "n s@pack"} {
		_, err := pc.Resolve(session.Session{}, in, pathctx.ModeCurrentDir, "")
		if !errors.Is(err, packref.ErrMalformedReference) {
			t.Errorf("Resolve(%q) error = %v, want ErrMalformedReference", in, err)
		}
	}
}

func TestResolve_InvalidMode(t *testing.T) {
	t.Parallel()

	pc, _ := newWorkspaceContext(t)

	_, err := pc.Resolve(session.Session{}, "x", pathctx.Mode("sideways"), "")
	if !errors.Is(err, pathctx.ErrInvalidMode) {
		t.Errorf("Resolve() error = %v, want ErrInvalidMode", err)
	}
}

func TestResolve_Concurrent(t *testing.T) {
	t.Parallel()

	pc, l := newWorkspaceContext(t)
	l.AddInstalledPack(t, "ns", "pack")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := session.MustNew()
			for _, in := range []string{"$tmp/a", "ns@pack/b", "rel", "~/x"} {
				if _, err := pc.Resolve(sess, in, pathctx.ModeWorkspaceDir, ""); err != nil {
					t.Errorf("Resolve(%q) error = %v", in, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewWithOptions_MissingWorkspaceRoot(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	_, err := pathctx.NewWithOptions(pathctx.Options{
		HomeDir:       fsPath(l.Home),
		CurrentDir:    fsPath(l.Project),
		WorkspaceRoot: fsPath(filepath.Join(l.Project, "missing")),
	})
	if !errors.Is(err, dirs.ErrPathUnresolvable) {
		t.Errorf("NewWithOptions() error = %v, want ErrPathUnresolvable", err)
	}
}

func TestNewWithOptions_Discovers(t *testing.T) {
	t.Parallel()

	l := testutil.NewLayout(t)
	l.InitWorkspace(t)
	deep := filepath.Join(l.Project, "a", "b")
	testutil.MustMkdirAll(t, deep)

	pc, err := pathctx.NewWithOptions(pathctx.Options{HomeDir: fsPath(l.Home), CurrentDir: fsPath(deep)})
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	root, ok := pc.WorkspaceRoot()
	if !ok || root.String() != l.Project {
		t.Errorf("WorkspaceRoot() = (%q, %v), want (%q, true)", root, ok, l.Project)
	}
	if pc.HomeDir().String() != l.Home {
		t.Errorf("HomeDir() = %q, want %q", pc.HomeDir(), l.Home)
	}
}
