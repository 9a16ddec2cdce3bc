//revive:disable:var-naming
package common

//revive:enable:var-naming

import "strings"

// IsSpace reports whether c is an ASCII whitespace byte
// (space, tab, CR, LF, form feed, vertical tab).
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}

	return false
}

// SkipSpaces returns the first index after spaces (starts skipping from pos)
// Returns len(line) if all remaining characters are spaces.
func SkipSpaces(line string, pos int) int {
	for i := pos; i < len(line); i++ {
		if !IsSpace(line[i]) {
			return i
		}
	}

	return len(line)
}

// SkipSpacesBack returns the last index (moving left from pos) that is NOT a space
// Returns -1 if all characters from 0 to pos are spaces.
func SkipSpacesBack(line string, pos int) int {
	for i := pos; i >= 0; i-- {
		if !IsSpace(line[i]) {
			return i
		}
	}

	return -1
}

// Trim strips ASCII whitespace from both ends of s.
// Internal whitespace is kept verbatim.
func Trim(s string) string {
	start := SkipSpaces(s, 0)
	if start == len(s) {
		return ""
	}

	end := SkipSpacesBack(s, len(s)-1)

	return s[start : end+1]
}

// Equal compares two names case-insensitively unless caseSensitive is set.
func Equal(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}

	return strings.EqualFold(a, b)
}
