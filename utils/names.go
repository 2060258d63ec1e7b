package utils

import (
	"strings"
)

// NormalizeName folds a display name for case-insensitive uniqueness checks:
// surrounding whitespace is trimmed, inner runs of whitespace collapse to a
// single space, and the result is lowercased. "Screens" and "screens "
// normalize to the same value.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Slugify turns a display name into a URL slug: lowercase, non-alphanumerics
// collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
