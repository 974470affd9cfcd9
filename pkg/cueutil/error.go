// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	stderrors "errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize bounds the files read for validation.
const DefaultMaxFileSize int64 = 1 << 20

type (
	// ValidationError is a CUE error rendered with its file name and field
	// paths. Unwrap returns the original CUE error.
	ValidationError struct {
		msg   string
		cause error
	}
)

// FormatError rewrites a CUE error as "<file>: <path>: <message>", one line
// per underlying error. Non-CUE errors are prefixed with the file name.
// The result always wraps err.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	// errors.Errors promotes plain errors to a one-element list.
	var cueErr errors.Error
	if !stderrors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filename, err)
	}

	list := errors.Errors(err)

	lines := make([]string, 0, len(list))
	for _, e := range list {
		path := formatPath(errors.Path(e))
		msg := e.Error()
		if path == "" {
			lines = append(lines, msg)
			continue
		}
		// CUE may already lead the message with the path.
		if rest, ok := strings.CutPrefix(msg, path); ok {
			msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		}
		lines = append(lines, path+": "+msg)
	}

	if len(lines) == 1 {
		return &ValidationError{msg: filename + ": " + lines[0], cause: err}
	}
	return &ValidationError{
		msg:   filename + ": validation failed:\n  " + strings.Join(lines, "\n  "),
		cause: err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.msg }

// Unwrap returns the CUE error.
func (e *ValidationError) Unwrap() error { return e.cause }

// formatPath renders ["a", "0", "b"] as "a[0].b".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteByte('[')
			sb.WriteString(part)
			sb.WriteByte(']')
		case i > 0:
			sb.WriteByte('.')
			sb.WriteString(part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize fails when data is larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}
