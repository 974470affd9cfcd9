// SPDX-License-Identifier: MPL-2.0

// Package issue turns resolver failures into user-facing messages.
//
// ActionableError adds the failed operation, the input involved and
// remediation hints to an error. The issue catalog holds a longer Markdown
// explanation for each common failure, rendered in the terminal with glamour.
package issue
