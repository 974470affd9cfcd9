// SPDX-License-Identifier: MPL-2.0

package pathctx

import (
	"errors"
	"fmt"

	"github.com/aipack/aipack/pkg/types"
)

var (
	// ErrReferenceNotFound is returned when a pack reference names a pack
	// that no repository root holds.
	ErrReferenceNotFound = errors.New("pack reference not found")

	// ErrSessionRequired is returned when a $tmp path is resolved without a
	// session.
	ErrSessionRequired = errors.New("session required")

	// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
	ErrInvalidMode = errors.New("invalid resolution mode")
)

type (
	// ReferenceNotFoundError wraps ErrReferenceNotFound. Searched lists the
	// candidate directories that were checked.
	ReferenceNotFoundError struct {
		Input    string
		Searched []types.FilesystemPath
		Cause    error
	}

	// SessionRequiredError wraps ErrSessionRequired.
	SessionRequiredError struct {
		Input string
	}

	// InvalidModeError is returned when a Mode value is not recognized.
	InvalidModeError struct {
		Value Mode
	}
)

// Error implements the error interface.
func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("pack reference %q not found (searched %d location(s))", e.Input, len(e.Searched))
}

// Unwrap returns both the sentinel and the lookup error.
func (e *ReferenceNotFoundError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrReferenceNotFound}
	}
	return []error{ErrReferenceNotFound, e.Cause}
}

// Error implements the error interface.
func (e *SessionRequiredError) Error() string {
	return fmt.Sprintf("cannot resolve %q: a session is required for $tmp paths", e.Input)
}

// Unwrap returns ErrSessionRequired for errors.Is() compatibility.
func (e *SessionRequiredError) Unwrap() error { return ErrSessionRequired }

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid resolution mode %q (valid: current-dir, workspace, workspace-marker)", e.Value)
}

// Unwrap returns ErrInvalidMode for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }
