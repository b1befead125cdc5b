package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/boxoffice"
)

// Ensure LoggingFilmService implements boxoffice.FilmService.
var _ boxoffice.FilmService = (*LoggingFilmService)(nil)

// LoggingFilmService wraps a FilmService with logging.
type LoggingFilmService struct {
	next   boxoffice.FilmService
	logger *slog.Logger
}

// NewLoggingFilmService creates a new LoggingFilmService.
func NewLoggingFilmService(next boxoffice.FilmService, logger *slog.Logger) *LoggingFilmService {
	return &LoggingFilmService{next: next, logger: logger}
}

func (s *LoggingFilmService) DeleteFilms(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete films",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteFilms(ctx)
}

func (s *LoggingFilmService) CreateFilms(ctx context.Context, films []*boxoffice.Film) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create films",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateFilms(ctx, films)
}

func (s *LoggingFilmService) FindFilms(ctx context.Context) (films []*boxoffice.Film, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find films",
			"count", len(films),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFilms(ctx)
}
