// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"errors"
	"fmt"

	"github.com/aipack/aipack/pkg/types"
)

const (
	// RootWorkspace names the workspace directory in WorkspaceRequiredError.
	RootWorkspace RootName = "workspace root"
	// RootWorkspaceMarker names the .aipack directory in WorkspaceRequiredError.
	RootWorkspaceMarker RootName = "workspace marker"
)

var (
	// ErrHomeDirUnavailable is returned when the user's home directory cannot
	// be determined or does not exist.
	ErrHomeDirUnavailable = errors.New("home directory unavailable")

	// ErrWorkspaceRequired is returned when an operation needs a workspace but
	// none was found or configured.
	ErrWorkspaceRequired = errors.New("no workspace available")

	// ErrPathUnresolvable is returned when a root that must already exist is
	// missing or cannot be canonicalized.
	ErrPathUnresolvable = errors.New("path cannot be resolved")
)

type (
	// RootName identifies which workspace directory an operation needed.
	RootName string

	// HomeDirError wraps ErrHomeDirUnavailable. Path is set when the home
	// directory was determined but does not exist.
	HomeDirError struct {
		Path  types.FilesystemPath
		Cause error
	}

	// WorkspaceRequiredError wraps ErrWorkspaceRequired. Input is the raw
	// value being resolved when the workspace was needed.
	WorkspaceRequiredError struct {
		Input string
		Root  RootName
	}

	// UnresolvablePathError wraps ErrPathUnresolvable.
	UnresolvablePathError struct {
		Path  types.FilesystemPath
		Cause error
	}
)

// String returns the string representation of the RootName.
func (n RootName) String() string { return string(n) }

// Error implements the error interface.
func (e *HomeDirError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("home directory %q unavailable: %v", e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("home directory %q does not exist", e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("cannot determine home directory: %v", e.Cause)
	default:
		return ErrHomeDirUnavailable.Error()
	}
}

// Unwrap returns both the sentinel and the cause.
func (e *HomeDirError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrHomeDirUnavailable}
	}
	return []error{ErrHomeDirUnavailable, e.Cause}
}

// Error implements the error interface.
func (e *WorkspaceRequiredError) Error() string {
	root := e.Root
	if root == "" {
		root = RootWorkspace
	}
	if e.Input == "" {
		return fmt.Sprintf("no workspace available: a %s is required", root)
	}
	return fmt.Sprintf("no workspace available: resolving %q requires a %s", e.Input, root)
}

// Unwrap returns ErrWorkspaceRequired for errors.Is() compatibility.
func (e *WorkspaceRequiredError) Unwrap() error { return ErrWorkspaceRequired }

// Error implements the error interface.
func (e *UnresolvablePathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot resolve %q: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("cannot resolve %q", e.Path)
}

// Unwrap returns both the sentinel and the cause.
func (e *UnresolvablePathError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPathUnresolvable}
	}
	return []error{ErrPathUnresolvable, e.Cause}
}
