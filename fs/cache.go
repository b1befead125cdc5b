// Package fs provides a file-based cache of fetched pages.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/boxoffice"
)

// Ensure PageCache implements boxoffice.Fetcher at compile time.
var _ boxoffice.Fetcher = (*PageCache)(nil)

// PageCache wraps a Fetcher and keeps every successfully fetched page on
// disk. Later fetches of the same URL are served from the cache directory.
type PageCache struct {
	next boxoffice.Fetcher
	dir  string
}

// NewPageCache creates a PageCache storing pages under dir.
func NewPageCache(next boxoffice.Fetcher, dir string) *PageCache {
	return &PageCache{next: next, dir: dir}
}

// Path returns the cache file used for rawURL.
func (c *PageCache) Path(rawURL string) string {
	key := strconv.FormatUint(xxhash.Sum64String(rawURL), 16)
	return filepath.Join(c.dir, key+".html")
}

// Fetch returns the cached page for url, fetching and storing it on a miss.
func (c *PageCache) Fetch(ctx context.Context, url string) (string, error) {
	path := c.Path(url)

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("read cache: %w", err)
	}

	html, err := c.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := c.store(path, html); err != nil {
		return "", fmt.Errorf("write cache: %w", err)
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (c *PageCache) Close() error {
	return c.next.Close()
}

// store writes to a temp file in the cache directory, then renames it into
// place so readers never see a partial page.
func (c *PageCache) store(path, html string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, ".page-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
