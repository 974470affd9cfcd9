// SPDX-License-Identifier: MPL-2.0

package packref

import (
	"errors"
	"fmt"
)

const (
	// ReasonFormat means the reference has more than one '@'.
	ReasonFormat Reason = "invalid pack reference format"
	// ReasonMissingNamespace means the namespace is empty where one is required.
	ReasonMissingNamespace Reason = "missing or empty namespace"
	// ReasonMissingName means the pack name is empty.
	ReasonMissingName Reason = "missing or empty name"
	// ReasonInvalidCharacter means the namespace or name breaks the identity charset.
	ReasonInvalidCharacter Reason = "invalid character"
)

// ErrMalformedReference is the sentinel wrapped by MalformedReferenceError.
var ErrMalformedReference = errors.New("malformed pack reference")

type (
	// Reason classifies why a reference was rejected.
	Reason string

	// MalformedReferenceError reports a reference that cannot be parsed or
	// whose identity breaks the charset rule. Input is the raw text the caller
	// supplied.
	MalformedReferenceError struct {
		Input  string
		Reason Reason
		Detail string
	}
)

// String returns the reason text.
func (r Reason) String() string { return string(r) }

// Error implements the error interface.
func (e *MalformedReferenceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s in pack reference %q: %s", e.Reason, e.Input, e.Detail)
	}
	return fmt.Sprintf("%s in pack reference %q", e.Reason, e.Input)
}

// Unwrap returns ErrMalformedReference for errors.Is() compatibility.
func (e *MalformedReferenceError) Unwrap() error { return ErrMalformedReference }
