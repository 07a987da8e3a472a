// Package slug derives URL-safe identifiers from display names.
// Client-supplied slugs are never trusted; every slug in the system
// comes out of Make.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reDrop     = regexp.MustCompile(`[^a-z0-9\s-]+`)
	reSeparate = regexp.MustCompile(`[\s_-]+`)
)

// Make lowercases the name, strips diacritics, drops everything outside
// [a-z0-9 -], collapses whitespace and hyphen runs into single hyphens
// and trims hyphens from the ends. It is total and idempotent.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// é → e, ã → a, etc.: decompose and drop the combining marks.
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = reDrop.ReplaceAllString(b.String(), "")
	s = reSeparate.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
