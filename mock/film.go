package mock

import (
	"context"

	"github.com/fwojciec/boxoffice"
)

var _ boxoffice.FilmService = (*FilmService)(nil)

// FilmService is a mock implementation of boxoffice.FilmService.
type FilmService struct {
	DeleteFilmsFn func(ctx context.Context) error
	CreateFilmsFn func(ctx context.Context, films []*boxoffice.Film) (int, error)
	FindFilmsFn   func(ctx context.Context) ([]*boxoffice.Film, error)
}

func (s *FilmService) DeleteFilms(ctx context.Context) error {
	return s.DeleteFilmsFn(ctx)
}

func (s *FilmService) CreateFilms(ctx context.Context, films []*boxoffice.Film) (int, error) {
	return s.CreateFilmsFn(ctx, films)
}

func (s *FilmService) FindFilms(ctx context.Context) ([]*boxoffice.Film, error) {
	return s.FindFilmsFn(ctx)
}
