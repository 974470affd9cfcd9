// SPDX-License-Identifier: MPL-2.0

package packref

import "strings"

// GlobMeta are the characters that start a glob wildcard.
const GlobMeta = "*?[{"

// HasWildcard reports whether s contains any GlobMeta character.
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, GlobMeta)
}

// LooksLikeReference reports whether s should be treated as a pack reference:
// it contains an '@' before the first glob wildcard character. Anything after
// a wildcard is pattern text, so an '@' there does not count.
//
// The check is textual and cheap; callers still parse the string and report
// a MalformedReferenceError if it does not hold up.
func LooksLikeReference(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '@':
			return true
		case strings.IndexByte(GlobMeta, c) >= 0:
			return false
		}
	}
	return false
}
