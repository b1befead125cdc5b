package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/boxoffice"
)

// Ensure DetailExtractor implements boxoffice.DetailExtractor.
var _ boxoffice.DetailExtractor = (*DetailExtractor)(nil)

// field identifies an infobox row the extractor cares about.
type field int

const (
	fieldNone field = iota
	fieldDirector
	fieldReleaseDate
	fieldCountry
	fieldBoxOffice
)

// matchField maps a lowercased infobox header to the field it labels.
func matchField(header string) field {
	switch {
	case strings.Contains(header, "directed by"):
		return fieldDirector
	case strings.Contains(header, "release date"):
		return fieldReleaseDate
	case header == "country" || header == "countries" || header == "country of origin":
		return fieldCountry
	case strings.Contains(header, "box office"):
		return fieldBoxOffice
	}
	return fieldNone
}

// DetailExtractor reads film details from an article's infobox.
type DetailExtractor struct{}

// NewDetailExtractor creates a new DetailExtractor.
func NewDetailExtractor() *DetailExtractor {
	return &DetailExtractor{}
}

// ExtractDetails parses the article and extracts its infobox fields.
func (e *DetailExtractor) ExtractDetails(html string) (*boxoffice.FilmDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, boxoffice.Errorf(boxoffice.EINVALID, "failed to parse HTML: %v", err)
	}
	return ExtractInfobox(doc.Selection), nil
}

// ExtractInfobox locates the first infobox table below sel and maps its
// header/value rows onto film details.
//
// Only rows with both a header and a data cell are considered. When several
// rows carry the same label, the first one wins.
func ExtractInfobox(sel *goquery.Selection) *boxoffice.FilmDetails {
	details := &boxoffice.FilmDetails{}

	infobox := sel.Find(`table[class*="infobox"]`).First()
	if infobox.Length() == 0 {
		return details
	}

	seen := make(map[field]bool)
	infobox.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		if th.Length() == 0 {
			return
		}
		td := row.Find("td").First()
		if td.Length() == 0 {
			return
		}

		f := matchField(strings.ToLower(strings.TrimSpace(joinedText(th, ""))))
		if f == fieldNone || seen[f] {
			return
		}
		seen[f] = true

		switch f {
		case fieldDirector:
			details.Director = ptr(ExtractDirector(td))
		case fieldReleaseDate:
			details.ReleaseYear = ExtractReleaseYear(td)
		case fieldCountry:
			details.Country = ptr(ExtractCountry(td))
		case fieldBoxOffice:
			details.BoxOffice = ptr(ExtractBoxOffice(td))
		}
	})

	return details
}
