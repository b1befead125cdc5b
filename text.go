package boxoffice

import (
	"regexp"
	"strings"
)

var footnoteRe = regexp.MustCompile(`\[\d+\]`)

// CleanText removes bracketed footnote markers such as "[2]" and collapses
// runs of whitespace into single spaces, trimming both ends.
func CleanText(s string) string {
	// Removing a marker can expose another one, e.g. "[[1]2]".
	for footnoteRe.MatchString(s) {
		s = footnoteRe.ReplaceAllString(s, "")
	}
	return strings.Join(strings.Fields(s), " ")
}

// SplitGluedNames inserts a space wherever a lowercase ASCII letter is
// directly followed by an uppercase one ("JohnSmith" becomes "John Smith").
//
// Names that are legitimately camel-cased ("DreamWorks") are split too.
func SplitGluedNames(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	var prev rune
	for _, r := range s {
		if prev >= 'a' && prev <= 'z' && r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}
