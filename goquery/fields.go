package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/boxoffice"
)

var (
	yearRe        = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)
	dateSegmentRe = regexp.MustCompile(`[\n;]`)
	amountRe      = regexp.MustCompile(`\$[\d,.]+`)
	fallbackRe    = regexp.MustCompile(`[|\n]`)
)

// ExtractDirector returns the first credited director in the cell.
// A linked name wins over plain text.
func ExtractDirector(cell *goquery.Selection) string {
	return firstName(cell)
}

// ExtractCountry returns the first listed country in the cell.
func ExtractCountry(cell *goquery.Selection) string {
	return firstName(cell)
}

func firstName(cell *goquery.Selection) string {
	stripFootnotes(cell)
	if a := cell.Find("a").First(); a.Length() > 0 {
		return boxoffice.SplitGluedNames(boxoffice.CleanText(joinedText(a, "")))
	}
	return boxoffice.SplitGluedNames(FirstValue(cell))
}

// ExtractReleaseYear returns the first year between 1800 and 2099 found in
// the first release date listed in the cell. It returns nil if no year is
// present.
func ExtractReleaseYear(cell *goquery.Selection) *int {
	stripFootnotes(cell)
	text := boxoffice.CleanText(joinedText(cell, " "))

	first := dateSegmentRe.Split(text, 2)[0]
	m := yearRe.FindString(first)
	if m == "" {
		return nil
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &year
}

// ExtractBoxOffice returns the gross as "$<amount> <unit>", where unit is
// "billion", "million" or empty. Without a dollar amount the first
// pipe- or newline-separated segment of the cell text is returned as is.
func ExtractBoxOffice(cell *goquery.Selection) string {
	stripFootnotes(cell)
	text := joinFragments(strippedStrings(cell))
	text = boxoffice.CleanText(strings.ReplaceAll(text, "\u00a0", " "))

	loc := amountRe.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(fallbackRe.Split(text, 2)[0])
	}

	amount := text[loc[0]:loc[1]]
	rest := strings.ToLower(text[loc[1]:])

	var unit string
	switch {
	case strings.Contains(rest, "billion"):
		unit = "billion"
	case strings.Contains(rest, "million"):
		unit = "million"
	}
	return strings.TrimSpace(amount + " " + unit)
}

// joinFragments joins text fragments with single spaces, except that a
// fragment continuing a number (".264" after "$2") is glued to it.
func joinFragments(frags []string) string {
	var sb strings.Builder
	for i, f := range frags {
		if i > 0 && !continuesNumber(sb.String(), f) {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	return sb.String()
}

func continuesNumber(prev, next string) bool {
	if prev == "" || len(next) < 2 {
		return false
	}
	last := prev[len(prev)-1]
	return isDigit(last) && (next[0] == '.' || next[0] == ',') && isDigit(next[1])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
