package boxoffice

import "context"

// Film represents one entry of the highest-grossing films list, enriched
// with fields taken from the film's article.
//
// Optional fields are nil when the article does not provide them.
type Film struct {
	Title       string  `json:"title"`
	Director    *string `json:"director"`
	ReleaseYear *int    `json:"release_year"`
	Country     *string `json:"country"`
	BoxOffice   *string `json:"box_office"`
}

// FilmDetails holds the fields extracted from a film's infobox.
type FilmDetails struct {
	Director    *string
	ReleaseYear *int
	Country     *string
	BoxOffice   *string
}

// Apply copies the extracted details onto the film.
func (f *Film) Apply(d *FilmDetails) {
	if d == nil {
		return
	}
	f.Director = d.Director
	f.ReleaseYear = d.ReleaseYear
	f.Country = d.Country
	f.BoxOffice = d.BoxOffice
}

// FilmService represents a service for persisting films.
type FilmService interface {
	// DeleteFilms removes every stored film.
	DeleteFilms(ctx context.Context) error

	// CreateFilms stores the films as a single batch and returns the
	// number of records inserted. An empty batch inserts nothing.
	CreateFilms(ctx context.Context, films []*Film) (int, error)

	// FindFilms returns every stored film in insertion order.
	FindFilms(ctx context.Context) ([]*Film, error)
}
