package mock

import "github.com/fwojciec/boxoffice"

var _ boxoffice.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of boxoffice.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(html string) ([]boxoffice.ListingEntry, error)
}

func (e *ListingExtractor) ExtractListing(html string) ([]boxoffice.ListingEntry, error) {
	return e.ExtractListingFn(html)
}

var _ boxoffice.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor is a mock implementation of boxoffice.DetailExtractor.
type DetailExtractor struct {
	ExtractDetailsFn func(html string) (*boxoffice.FilmDetails, error)
}

func (e *DetailExtractor) ExtractDetails(html string) (*boxoffice.FilmDetails, error) {
	return e.ExtractDetailsFn(html)
}
