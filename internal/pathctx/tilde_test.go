// SPDX-License-Identifier: MPL-2.0

package pathctx_test

import (
	"path/filepath"
	"testing"
)

func TestTildeRoundTrip(t *testing.T) {
	t.Parallel()

	pc, l := newBaseOnlyContext(t)

	tests := []struct {
		path      string
		wantTilde string
	}{
		{l.Home, "~"},
		{filepath.Join(l.Home, "notes.md"), "~/notes.md"},
		{filepath.Join(l.Home, ".aipack-base", "pack", "custom"), "~/.aipack-base/pack/custom"},
	}
	for _, tt := range tests {
		tilde := pc.PathToTilde(fsPath(tt.path))
		if tilde != tt.wantTilde {
			t.Errorf("PathToTilde(%q) = %q, want %q", tt.path, tilde, tt.wantTilde)
		}
		if back := pc.TildeToPath(tilde); back.String() != tt.path {
			t.Errorf("TildeToPath(%q) = %q, want %q", tilde, back, tt.path)
		}
	}
}

func TestPathToTilde_OutsideHome(t *testing.T) {
	t.Parallel()

	pc, l := newBaseOnlyContext(t)

	for _, p := range []string{l.Project, l.Home + "-sibling", filepath.Dir(l.Home)} {
		if got := pc.PathToTilde(fsPath(p)); got != p {
			t.Errorf("PathToTilde(%q) = %q, want unchanged", p, got)
		}
	}
	if got := pc.TildeToPath("plain/rel"); got.String() != "plain/rel" {
		t.Errorf("TildeToPath(plain/rel) = %q, want unchanged", got)
	}
}
