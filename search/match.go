package search

import "strings"

// Match reports whether query occurs in any non-empty part, ignoring ASCII
// case. Parts are tested in order and empty parts are skipped.
func Match(query string, parts ...string) bool {
	for _, part := range parts {
		if part == "" {
			continue
		}
		if containsFold(part, query) {
			return true
		}
	}
	return false
}

// IsBlank reports whether query has nothing to search for.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// containsFold is a byte-wise substring test that folds ASCII letters only.
func containsFold(s, substr string) bool {
	n := len(substr)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(s); i++ {
		if lower(s[i]) != lower(substr[0]) {
			continue
		}
		if equalFoldASCII(s[i:i+n], substr) {
			return true
		}
	}
	return false
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
