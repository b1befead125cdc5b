package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/boxoffice"
	"github.com/fwojciec/boxoffice/crawl"
	"github.com/fwojciec/boxoffice/fs"
	"github.com/fwojciec/boxoffice/goquery"
	bohttp "github.com/fwojciec/boxoffice/http"
	"github.com/fwojciec/boxoffice/mongo"
	boslog "github.com/fwojciec/boxoffice/slog"
	"github.com/fwojciec/boxoffice/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run builds them from flags.
	Fetcher boxoffice.Fetcher
	Films   boxoffice.FilmService

	closers []func() error
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the store and fetcher opened by Run.
func (m *Main) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("boxoffice"),
		kong.Description("Scrape the highest-grossing films list into a document store."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if wantsHelp(args) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return boxoffice.Errorf(boxoffice.EINVALID, "%v", err)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	defer m.Close()

	films := m.Films
	if films == nil {
		films, err = m.openStore(ctx, cli)
		if err != nil {
			return err
		}
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = bohttp.NewFetcher(bohttp.WithTimeout(cli.Timeout))
		m.closers = append(m.closers, fetcher.Close)
	}
	if cli.CacheDir != "" {
		fetcher = fs.NewPageCache(fetcher, cli.CacheDir)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Films:  boslog.NewLoggingFilmService(films, logger),
		Scraper: &crawl.Scraper{
			Fetcher:  boslog.NewLoggingFetcher(fetcher, logger),
			Listing:  goquery.NewListingExtractor(),
			Details:  goquery.NewDetailExtractor(),
			Throttle: crawl.NewThrottle(cli.Delay),
			Logger:   logger,
		},
	}

	return cli.Run(deps)
}

// openStore connects to the store named by the --db URI.
func (m *Main) openStore(ctx context.Context, cli *CLI) (boxoffice.FilmService, error) {
	switch {
	case strings.HasPrefix(cli.DB, "mongodb://"), strings.HasPrefix(cli.DB, "mongodb+srv://"):
		db := mongo.NewDB(cli.DB, cli.Database)
		if err := db.Open(ctx); err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		m.closers = append(m.closers, func() error { return db.Close(context.Background()) })
		return mongo.NewFilmService(db, cli.Collection), nil

	case sqlite.IsURI(cli.DB):
		db := sqlite.NewDB(sqlite.Path(cli.DB))
		if err := db.Open(); err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		m.closers = append(m.closers, db.Close)
		return sqlite.NewFilmService(db), nil
	}

	return nil, boxoffice.Errorf(boxoffice.EINVALID, "unsupported store URI %q: expected mongodb:// or sqlite:", cli.DB)
}

func wantsHelp(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// errorText returns the message shown to the user. Internal errors have no
// user-facing message, so their full text is shown instead.
func errorText(err error) string {
	if boxoffice.ErrorCode(err) == boxoffice.EINTERNAL {
		return err.Error()
	}
	return boxoffice.ErrorMessage(err)
}
