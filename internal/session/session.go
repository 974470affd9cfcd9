// SPDX-License-Identifier: MPL-2.0

// Package session provides the run identifier that scopes the $tmp root.
//
// A session id is opaque. aip generates UUIDv7 ids, but any id that is safe
// as a single path segment is accepted, so other tools can pick their own.
package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/aipack/aipack/pkg/platform"
)

// segmentUnsafe are characters a session id cannot hold because it names a
// directory on every supported OS.
const segmentUnsafe = `/\:`

// ErrInvalidSession is the sentinel error wrapped by InvalidSessionError.
var ErrInvalidSession = errors.New("invalid session id")

type (
	// Session identifies one run. Its string form names the run's
	// .session/<id>/tmp directory. The zero value means no session.
	Session struct {
		id string
	}

	// InvalidSessionError is returned by Parse for ids that cannot name a
	// directory.
	InvalidSessionError struct {
		Value  string
		Reason string
	}
)

// New returns a fresh time-ordered session.
func New() (Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Session{}, fmt.Errorf("generating session id: %w", err)
	}
	return Session{id: id.String()}, nil
}

// MustNew is New for callers that cannot continue without a session.
func MustNew() Session {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse accepts any id usable as one path segment: non-blank, not "." or
// "..", free of separators and control characters, and not a reserved
// Windows device name.
func Parse(s string) (Session, error) {
	if reason := checkSegment(s); reason != "" {
		return Session{}, &InvalidSessionError{Value: s, Reason: reason}
	}
	return Session{id: s}, nil
}

func checkSegment(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "must not be blank"
	case s == "." || s == "..":
		return "must not be a relative directory name"
	case strings.ContainsAny(s, segmentUnsafe):
		return "must not contain path separators or ':'"
	case strings.ContainsFunc(s, unicode.IsControl):
		return "must not contain control characters"
	case platform.IsWindowsReservedName(s):
		return "must not be a reserved device name"
	}
	return ""
}

// String returns the id, or "" for the zero session.
func (s Session) String() string { return s.id }

// IsZero reports whether s is the zero session.
func (s Session) IsZero() bool { return s.id == "" }

// Error implements the error interface for InvalidSessionError.
func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("invalid session id %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidSession for errors.Is() compatibility.
func (e *InvalidSessionError) Unwrap() error { return ErrInvalidSession }
