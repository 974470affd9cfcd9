// SPDX-License-Identifier: MPL-2.0

package packref

import (
	"errors"
	"fmt"
)

const (
	// ScopePackDir addresses the pack's own directory in a repository root.
	ScopePackDir Scope = "pack-dir"
	// ScopeBaseSupport addresses the pack's support tree under the base root.
	ScopeBaseSupport Scope = "base-support"
	// ScopeWorkspaceSupport addresses the pack's support tree under the workspace marker.
	ScopeWorkspaceSupport Scope = "workspace-support"

	// BaseScopeSuffix selects ScopeBaseSupport when attached to the name.
	BaseScopeSuffix = "$base"
	// WorkspaceScopeSuffix selects ScopeWorkspaceSupport when attached to the name.
	WorkspaceScopeSuffix = "$workspace"
)

// ErrInvalidScope is the sentinel wrapped by InvalidScopeError.
var ErrInvalidScope = errors.New("invalid reference scope")

type (
	// Scope tells the resolver which tree a reference points into.
	Scope string

	// InvalidScopeError is returned when a Scope value is not recognized.
	InvalidScopeError struct {
		Value Scope
	}
)

// String returns the string representation of the Scope.
func (s Scope) String() string { return string(s) }

// Validate returns nil for the three known scopes.
func (s Scope) Validate() error {
	switch s {
	case ScopePackDir, ScopeBaseSupport, ScopeWorkspaceSupport:
		return nil
	default:
		return &InvalidScopeError{Value: s}
	}
}

// Suffix returns the name suffix that selects s, or "" for ScopePackDir.
func (s Scope) Suffix() string {
	switch s {
	case ScopeBaseSupport:
		return BaseScopeSuffix
	case ScopeWorkspaceSupport:
		return WorkspaceScopeSuffix
	default:
		return ""
	}
}

// IsSupport reports whether s addresses a support tree rather than a pack directory.
func (s Scope) IsSupport() bool {
	return s == ScopeBaseSupport || s == ScopeWorkspaceSupport
}

// Error implements the error interface for InvalidScopeError.
func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid reference scope %q (valid: pack-dir, base-support, workspace-support)", e.Value)
}

// Unwrap returns ErrInvalidScope for errors.Is() compatibility.
func (e *InvalidScopeError) Unwrap() error { return ErrInvalidScope }
