package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/boxoffice"
	"golang.org/x/net/html"
)

// FirstValue returns the first meaningful value of a table cell.
//
// Footnotes are stripped, then the cell's direct children are visited in
// order: the first bare text node or element with non-empty text wins.
// Style and script children are skipped. Cells listing several values
// (directors, co-producing countries) therefore yield only the first one.
// When no child has text, the normalized text of the whole cell is returned.
func FirstValue(cell *goquery.Selection) string {
	stripFootnotes(cell)

	var value string
	cell.Contents().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		n := child.Get(0)
		switch {
		case n.Type == html.TextNode:
			value = boxoffice.CleanText(strings.TrimSpace(n.Data))
		case n.Type == html.ElementNode && !isIgnored(n):
			value = boxoffice.CleanText(joinedText(child, " "))
		}
		return value == ""
	})
	if value != "" {
		return value
	}

	return boxoffice.CleanText(joinedText(cell, " "))
}
