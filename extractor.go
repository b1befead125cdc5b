package boxoffice

// ListingEntry is one row of the listing table.
type ListingEntry struct {
	// Title is the film title as shown in the table.
	Title string

	// Link is the raw href of the film's article. It may be relative
	// and is empty when the row has no usable link.
	Link string
}

// ListingExtractor extracts film rows from the listing page.
type ListingExtractor interface {
	// ExtractListing returns the entries of the listing table in document
	// order. A page without a recognizable table yields no entries.
	ExtractListing(html string) ([]ListingEntry, error)
}

// DetailExtractor extracts enrichment fields from a film's article.
type DetailExtractor interface {
	// ExtractDetails locates the article's infobox and returns the fields
	// it could find. Missing rows leave the corresponding field nil.
	ExtractDetails(html string) (*FilmDetails, error)
}
