// Package goquery implements the listing and infobox extractors on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// isIgnored reports whether an element's text never counts as content.
func isIgnored(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "style" || n.Data == "script")
}

// strippedStrings returns the trimmed, non-empty text nodes below the
// selection in document order. Text inside style and script elements is
// skipped.
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
		case html.ElementNode, html.DocumentNode:
			if isIgnored(n) {
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

// joinedText joins the stripped strings of the selection with sep.
func joinedText(sel *goquery.Selection, sep string) string {
	return strings.Join(strippedStrings(sel), sep)
}

// stripFootnotes removes citation superscripts from the selection.
func stripFootnotes(sel *goquery.Selection) *goquery.Selection {
	sel.Find("sup").Remove()
	return sel
}

func ptr[T any](v T) *T { return &v }
