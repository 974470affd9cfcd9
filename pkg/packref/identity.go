// SPDX-License-Identifier: MPL-2.0

package packref

import (
	"fmt"
	"unicode"
)

// PackIdentity names a pack. Both parts must be non-empty, made of letters,
// digits, '-' and '_', and must not start with a digit.
type PackIdentity struct {
	Namespace string
	Name      string
}

// String returns "namespace@name".
func (id PackIdentity) String() string {
	return id.Namespace + "@" + id.Name
}

// Validate checks both parts against the identity charset. The raw input is
// used only for error reporting.
func (id PackIdentity) Validate() error {
	if id.Namespace == "" {
		return &MalformedReferenceError{Input: id.String(), Reason: ReasonMissingNamespace}
	}
	if err := validatePart(id.String(), "namespace", id.Namespace); err != nil {
		return err
	}
	if id.Name == "" {
		return &MalformedReferenceError{Input: id.String(), Reason: ReasonMissingName}
	}
	return validatePart(id.String(), "name", id.Name)
}

// ValidateNamespace checks a standalone namespace, as accepted by listing
// filters.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return &MalformedReferenceError{Input: ns, Reason: ReasonMissingNamespace}
	}
	return validatePart(ns, "namespace", ns)
}

// IsValidPart reports whether s satisfies the identity charset. Directory
// scanners use it to skip entries that can never be addressed by a reference.
func IsValidPart(s string) bool {
	return checkPart(s) == ""
}

func validatePart(input, field, value string) error {
	if detail := checkPart(value); detail != "" {
		return &MalformedReferenceError{
			Input:  input,
			Reason: ReasonInvalidCharacter,
			Detail: fmt.Sprintf("%s %q %s", field, value, detail),
		}
	}
	return nil
}

// checkPart returns an empty string when s is valid, otherwise a short
// description of the first violation.
func checkPart(s string) string {
	if s == "" {
		return "is empty"
	}
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return "must not start with a digit"
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return fmt.Sprintf("contains %q (allowed: letters, digits, '-', '_')", r)
	}
	return ""
}
