// SPDX-License-Identifier: MPL-2.0

package packdir

import (
	"context"
	"log/slog"
)

const (
	// SeverityWarning marks a skipped entry that may surprise the user.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an entry skipped for an expected reason.
	SeverityInfo Severity = "info"
)

// Diagnostic codes.
const (
	CodeScanFailed       = "pack_scan_failed"
	CodeInvalidName      = "pack_name_invalid"
	CodeReservedName     = "pack_name_reserved"
	CodeManifestInvalid  = "pack_manifest_invalid"
	CodeManifestMismatch = "pack_manifest_mismatch"
)

type (
	// Severity is the level of a Diagnostic.
	Severity string

	// Diagnostic describes an entry skipped or degraded during a scan.
	Diagnostic struct {
		Severity Severity
		// Code is a machine-readable identifier such as "pack_manifest_invalid".
		Code    string
		Message string
		Path    string
		Cause   error
	}
)

// String returns the string representation of the Severity.
func (s Severity) String() string { return string(s) }

// Log writes every diagnostic to the default slog logger, warnings at Warn
// and everything else at Debug.
func Log(diags []Diagnostic) {
	for _, d := range diags {
		level := slog.LevelDebug
		if d.Severity == SeverityWarning {
			level = slog.LevelWarn
		}
		attrs := []any{"code", d.Code, "path", d.Path}
		if d.Cause != nil {
			attrs = append(attrs, "error", d.Cause)
		}
		slog.Log(context.Background(), level, d.Message, attrs...)
	}
}
