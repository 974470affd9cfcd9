// SPDX-License-Identifier: MPL-2.0

package pathctx

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"cwd", ModeCurrentDir, false},
		{"current-dir", ModeCurrentDir, false},
		{"wks", ModeWorkspaceDir, false},
		{"workspace", ModeWorkspaceDir, false},
		{"marker", ModeWorkspaceMarkerDir, false},
		{"workspace-marker", ModeWorkspaceMarkerDir, false},
		{"", "", true},
		{"home", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
		}
	}
}
