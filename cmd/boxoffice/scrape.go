package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/boxoffice/crawl"
)

// Run scrapes the listing, replaces the stored films with the result and
// prints every stored record as a JSON line.
//
// The scrape runs before the store is cleared so a failed listing fetch
// leaves the previous data in place.
func (c *CLI) Run(deps *Dependencies) error {
	ctx := deps.Ctx

	result, err := deps.Scraper.Scrape(ctx, c.URL, func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			deps.Logger.Info("scraping films", "total", event.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			deps.Logger.Debug("film scraped",
				"title", event.Title,
				"completed", event.Completed,
				"total", event.Total,
			)
		}
	})
	if err != nil {
		return err
	}
	deps.Logger.Info("scrape finished", "films", len(result.Films), "failed", result.Failed)

	if err := deps.Films.DeleteFilms(ctx); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}

	n, err := deps.Films.CreateFilms(ctx, result.Films)
	if err != nil {
		return fmt.Errorf("insert films: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Inserted %d documents.\n", n)

	films, err := deps.Films.FindFilms(ctx)
	if err != nil {
		return fmt.Errorf("read back films: %w", err)
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, f := range films {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}

	return nil
}
