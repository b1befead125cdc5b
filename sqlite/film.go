package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/boxoffice"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ boxoffice.FilmService = (*FilmService)(nil)

// FilmService implements boxoffice.FilmService using SQLite.
type FilmService struct {
	db *DB
}

// NewFilmService creates a new FilmService.
func NewFilmService(db *DB) *FilmService {
	return &FilmService{db: db}
}

// DeleteFilms removes every stored film.
func (s *FilmService) DeleteFilms(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM films")
	return err
}

// CreateFilms inserts the batch in a single transaction. Films are appended
// after any already stored so that FindFilms preserves insertion order.
func (s *FilmService) CreateFilms(ctx context.Context, films []*boxoffice.Film) (int, error) {
	if len(films) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM films").Scan(&next); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO films (id, position, title, director, release_year, country, box_office, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for i, f := range films {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), next+i, f.Title,
			f.Director, f.ReleaseYear, f.Country, f.BoxOffice, createdAt); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(films), nil
}

// FindFilms returns every stored film in insertion order.
func (s *FilmService) FindFilms(ctx context.Context) ([]*boxoffice.Film, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, director, release_year, country, box_office
		FROM films
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []*boxoffice.Film
	for rows.Next() {
		var f boxoffice.Film
		if err := rows.Scan(&f.Title, &f.Director, &f.ReleaseYear, &f.Country, &f.BoxOffice); err != nil {
			return nil, err
		}
		films = append(films, &f)
	}

	return films, rows.Err()
}
