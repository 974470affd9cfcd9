// SPDX-License-Identifier: MPL-2.0

package pathctx

const (
	// ModeCurrentDir joins relative paths to the process working directory.
	ModeCurrentDir Mode = "current-dir"
	// ModeWorkspaceDir joins relative paths to the workspace root.
	ModeWorkspaceDir Mode = "workspace"
	// ModeWorkspaceMarkerDir joins relative paths to <workspace>/.aipack.
	ModeWorkspaceMarkerDir Mode = "workspace-marker"
)

// Mode selects the base directory for plain relative paths.
type Mode string

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Validate returns nil for the three known modes.
func (m Mode) Validate() error {
	switch m {
	case ModeCurrentDir, ModeWorkspaceDir, ModeWorkspaceMarkerDir:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// ParseMode accepts a mode name or one of the short forms cwd, wks and
// marker.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "cwd":
		return ModeCurrentDir, nil
	case "wks":
		return ModeWorkspaceDir, nil
	case "marker":
		return ModeWorkspaceMarkerDir, nil
	}
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}
