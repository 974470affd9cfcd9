// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"errors"
	"fmt"

	"github.com/aipack/aipack/pkg/types"
)

const (
	// RepoWorkspaceCustom is <workspace>/.aipack/pack/custom.
	RepoWorkspaceCustom RepoKind = "workspace-custom"
	// RepoBaseCustom is ~/.aipack-base/pack/custom.
	RepoBaseCustom RepoKind = "base-custom"
	// RepoBaseInstalled is ~/.aipack-base/pack/installed.
	RepoBaseInstalled RepoKind = "base-installed"
)

// ErrInvalidRepoKind is the sentinel error wrapped by InvalidRepoKindError.
var ErrInvalidRepoKind = errors.New("invalid repository kind")

type (
	// RepoKind identifies one of the pack repository roots. Kinds are listed
	// in search precedence order above.
	RepoKind string

	// RepoRoot is a pack repository directory that existed when it was listed.
	RepoRoot struct {
		Kind RepoKind
		Path types.FilesystemPath
	}

	// InvalidRepoKindError is returned when a RepoKind value is not recognized.
	InvalidRepoKindError struct {
		Value RepoKind
	}
)

// String returns the string representation of the RepoKind.
func (k RepoKind) String() string { return string(k) }

// Validate returns nil if the kind is one of the known repository kinds.
func (k RepoKind) Validate() error {
	switch k {
	case RepoWorkspaceCustom, RepoBaseCustom, RepoBaseInstalled:
		return nil
	default:
		return &InvalidRepoKindError{Value: k}
	}
}

// Precedence returns the search rank of k, lowest first. Unknown kinds sort last.
func (k RepoKind) Precedence() int {
	switch k {
	case RepoWorkspaceCustom:
		return 0
	case RepoBaseCustom:
		return 1
	case RepoBaseInstalled:
		return 2
	default:
		return 3
	}
}

// Error implements the error interface for InvalidRepoKindError.
func (e *InvalidRepoKindError) Error() string {
	return fmt.Sprintf("invalid repository kind %q (valid: workspace-custom, base-custom, base-installed)", e.Value)
}

// Unwrap returns ErrInvalidRepoKind for errors.Is() compatibility.
func (e *InvalidRepoKindError) Unwrap() error { return ErrInvalidRepoKind }
