package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/boxoffice"
)

// DefaultCaptionKeyword identifies the listing table by its caption.
const DefaultCaptionKeyword = "highest-grossing films"

// Ensure ListingExtractor implements boxoffice.ListingExtractor.
var _ boxoffice.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor reads film titles and article links from a wikitable.
type ListingExtractor struct {
	// CaptionKeyword selects the table whose caption contains it.
	// When no caption matches, the first wikitable is used.
	CaptionKeyword string
}

// NewListingExtractor creates a ListingExtractor using DefaultCaptionKeyword.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{CaptionKeyword: DefaultCaptionKeyword}
}

// ExtractListing parses the listing page and returns one entry per row.
func (e *ListingExtractor) ExtractListing(html string) ([]boxoffice.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, boxoffice.Errorf(boxoffice.EINVALID, "failed to parse HTML: %v", err)
	}

	table := e.findTable(doc.Selection)
	if table == nil {
		return nil, nil
	}

	rows := table.Find("tr")
	index := titleColumn(rows.First())
	if index < 0 {
		return nil, nil
	}

	var entries []boxoffice.ListingEntry
	rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() <= index {
			return
		}
		entries = append(entries, extractTitle(cells.Eq(index)))
	})
	return entries, nil
}

// findTable returns the wikitable whose caption mentions the keyword,
// falling back to the first wikitable. It returns nil if there is none.
func (e *ListingExtractor) findTable(sel *goquery.Selection) *goquery.Selection {
	tables := sel.Find("table.wikitable")
	if tables.Length() == 0 {
		return nil
	}

	keyword := normalizeCaption(e.CaptionKeyword)
	if keyword != "" {
		var match *goquery.Selection
		tables.EachWithBreak(func(_ int, table *goquery.Selection) bool {
			caption := table.Find("caption").First()
			if caption.Length() > 0 && strings.Contains(normalizeCaption(caption.Text()), keyword) {
				match = table
				return false
			}
			return true
		})
		if match != nil {
			return match
		}
	}

	return tables.First()
}

// normalizeCaption lowercases s and folds U+2011 non-breaking hyphens
// into plain hyphens.
func normalizeCaption(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "\u2011", "-"))
}

// titleColumn returns the index of the first header cell mentioning
// "title", or -1.
func titleColumn(header *goquery.Selection) int {
	index := -1
	header.Find("th, td").EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(joinedText(cell, "")), "title") {
			index = i
			return false
		}
		return true
	})
	return index
}

// extractTitle picks the title and link from a title cell. An italicized
// title is preferred, then a plain link, then the bare cell text.
func extractTitle(cell *goquery.Selection) boxoffice.ListingEntry {
	if i := cell.Find("i").First(); i.Length() > 0 {
		if a := i.Find("a").First(); a.Length() > 0 {
			return linkEntry(a)
		}
		return boxoffice.ListingEntry{Title: boxoffice.CleanText(joinedText(i, ""))}
	}
	if a := cell.Find("a").First(); a.Length() > 0 {
		return linkEntry(a)
	}
	return boxoffice.ListingEntry{Title: boxoffice.CleanText(joinedText(cell, ""))}
}

func linkEntry(a *goquery.Selection) boxoffice.ListingEntry {
	href, _ := a.Attr("href")
	return boxoffice.ListingEntry{
		Title: boxoffice.CleanText(joinedText(a, "")),
		Link:  href,
	}
}
