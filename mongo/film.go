package mongo

import (
	"context"
	"fmt"

	"github.com/fwojciec/boxoffice"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Compile-time interface verification.
var _ boxoffice.FilmService = (*FilmService)(nil)

// FilmService implements boxoffice.FilmService over a single collection.
type FilmService struct {
	coll *mongo.Collection
}

// NewFilmService creates a FilmService storing films in the named collection.
func NewFilmService(db *DB, collection string) *FilmService {
	return &FilmService{coll: db.collection(collection)}
}

// filmDocument is the stored shape of a film. Nil fields are stored as null.
type filmDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Director    *string       `bson:"director"`
	ReleaseYear *int          `bson:"release_year"`
	Country     *string       `bson:"country"`
	BoxOffice   *string       `bson:"box_office"`
}

func toDocument(f *boxoffice.Film) filmDocument {
	return filmDocument{
		Title:       f.Title,
		Director:    f.Director,
		ReleaseYear: f.ReleaseYear,
		Country:     f.Country,
		BoxOffice:   f.BoxOffice,
	}
}

func (d filmDocument) film() *boxoffice.Film {
	return &boxoffice.Film{
		Title:       d.Title,
		Director:    d.Director,
		ReleaseYear: d.ReleaseYear,
		Country:     d.Country,
		BoxOffice:   d.BoxOffice,
	}
}

// DeleteFilms removes every document in the collection.
func (s *FilmService) DeleteFilms(ctx context.Context) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete films: %w", err)
	}
	return nil
}

// CreateFilms inserts the batch with a single InsertMany call.
func (s *FilmService) CreateFilms(ctx context.Context, films []*boxoffice.Film) (int, error) {
	if len(films) == 0 {
		return 0, nil
	}

	docs := make([]filmDocument, len(films))
	for i, f := range films {
		docs[i] = toDocument(f)
	}

	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert films: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// FindFilms returns every document in natural order.
func (s *FilmService) FindFilms(ctx context.Context) ([]*boxoffice.Film, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}

	var docs []filmDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}

	films := make([]*boxoffice.Film, len(docs))
	for i, d := range docs {
		films[i] = d.film()
	}
	return films, nil
}
