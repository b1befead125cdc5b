// Package crawl orchestrates the two-stage scrape: the listing page is
// fetched and parsed into entries, then each entry's article is fetched and
// its infobox merged into the film record.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/boxoffice"
)

// Scraper fetches the listing page and enriches every film from its article.
// Requests are made sequentially.
type Scraper struct {
	Fetcher  boxoffice.Fetcher
	Listing  boxoffice.ListingExtractor
	Details  boxoffice.DetailExtractor
	Throttle *Throttle
	Logger   *slog.Logger

	// RetryDelays overrides DefaultRetryDelays when non-nil.
	// An empty slice disables retries.
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape.
type Result struct {
	// Films in listing order, including those whose details failed.
	Films []*boxoffice.Film

	// Failed counts films whose article could not be fetched or parsed.
	Failed int
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Scrape fetches listingURL, extracts its entries and enriches each one
// from the linked article.
//
// Failing to fetch or parse the listing page aborts the scrape. A failure on
// an article is logged and leaves that film's details nil. The throttle
// pauses after every successful article fetch.
func (s *Scraper) Scrape(ctx context.Context, listingURL string, progress ProgressFunc) (*Result, error) {
	base, err := url.Parse(listingURL)
	if err != nil {
		return nil, boxoffice.Errorf(boxoffice.EINVALID, "invalid listing URL: %v", err)
	}

	html, err := s.fetch(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	entries, err := s.Listing.ExtractListing(html)
	if err != nil {
		return nil, fmt.Errorf("extract listing: %w", err)
	}

	total := len(entries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	result := &Result{Films: make([]*boxoffice.Film, 0, total)}
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		film := &boxoffice.Film{Title: entry.Title}
		result.Films = append(result.Films, film)

		if entry.Link == "" {
			continue
		}

		if err := s.enrich(ctx, base, entry, film); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Failed++
			s.logger().Warn("film details failed", "title", entry.Title, "err", err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Title: entry.Title, Error: err})
			}
			continue
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Title: entry.Title})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// enrich fetches the entry's article and merges its details into film.
func (s *Scraper) enrich(ctx context.Context, base *url.URL, entry boxoffice.ListingEntry, film *boxoffice.Film) error {
	ref, err := url.Parse(entry.Link)
	if err != nil {
		return boxoffice.Errorf(boxoffice.EINVALID, "invalid link %q: %v", entry.Link, err)
	}
	articleURL := base.ResolveReference(ref).String()

	html, err := s.fetch(ctx, articleURL)
	if err != nil {
		return err
	}

	if err := s.Throttle.Wait(ctx); err != nil {
		return err
	}

	details, err := s.Details.ExtractDetails(html)
	if err != nil {
		return err
	}
	film.Apply(details)
	return nil
}

// fetch retrieves url, retrying transient failures.
func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	logRetry := func(url string, attempt int, err error) {
		s.logger().Info("retrying fetch", "url", url, "attempt", attempt, "err", err)
	}
	return FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, logRetry, delays)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
