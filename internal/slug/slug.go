// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Make converts a title into a URL-safe slug: lowercase, words joined by
// single hyphens, everything outside [a-z0-9] dropped.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// WithSuffix returns Make(title) followed by a hyphen and a 2-character
// random suffix so that duplicate titles still yield distinct slugs. A
// collision on the short suffix is possible; callers retry against the
// slug's unique constraint.
func WithSuffix(title string) string {
	return Make(title) + "-" + randomSuffix()
}

func randomSuffix() string {
	// First two hex chars of a v4 UUID: cheap, URL-safe entropy.
	return uuid.New().String()[:2]
}
