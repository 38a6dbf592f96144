package services

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9_ -]`)
	slugCollapse = regexp.MustCompile(`[ _-]+`)
)

// isSlugSpace reports whether r separates words in a title. The set is the
// ECMAScript whitespace and line terminator set, which differs from
// unicode.IsSpace: U+0085 is not a separator and U+FEFF is.
func isSlugSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Slugify derives the URL identifier of a listing from its title.
// It lower-cases and trims the title, drops everything but ASCII letters, digits,
// underscores, whitespace and hyphens, folds runs of whitespace, underscores and
// hyphens into one hyphen, and trims hyphens from both ends.
//
//	Slugify("Luxury 3 BHK Flat in Hisar") // "luxury-3-bhk-flat-in-hisar"
//	Slugify("New Title!!")                // "new-title"
func Slugify(title string) string {
	s := strings.Map(func(r rune) rune {
		if isSlugSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(title))
	s = strings.Trim(s, " ")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
