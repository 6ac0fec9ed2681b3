// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagecache keeps raw HTML pages fetched from the aggregator in a
// SQLite database so repeated lookups do not hit the network. Only page
// bodies are stored; parsing always runs on the cached HTML.
package pagecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/archive-search/pkg/types"
)

const dbFile = "pages.db"

// Cache is a URL-keyed store of page bodies with a freshness window.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens or creates dir/pages.db and its schema.
func Open(cfg types.CacheConfig) (*Cache, error) {
	if cfg.Dir == "" {
		return nil, errors.New("cache directory is empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Cache{db: db, ttl: cfg.TTL, now: time.Now}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS pages (
		url TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	return err
}

// Get returns the cached body for url. The boolean is false when the page is
// missing or older than the TTL.
func (c *Cache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	var fetched string
	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM pages WHERE url = ?`, url,
	).Scan(&body, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached page: %w", err)
	}

	if c.ttl > 0 {
		at, err := time.Parse(time.RFC3339Nano, fetched)
		if err != nil || c.now().Sub(at) > c.ttl {
			return nil, false, nil
		}
	}
	return body, true, nil
}

// Put stores body for url, replacing any earlier copy.
func (c *Cache) Put(ctx context.Context, url string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (url, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		url, body, c.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("writing cached page: %w", err)
	}
	return nil
}

// Prune deletes pages fetched more than olderThan ago and returns how many
// rows were removed. A zero or negative olderThan removes every page.
func (c *Cache) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if olderThan <= 0 {
		res, err = c.db.ExecContext(ctx, `DELETE FROM pages`)
	} else {
		cutoff := c.now().Add(-olderThan).UTC().Format(time.RFC3339Nano)
		res, err = c.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`, cutoff)
	}
	if err != nil {
		return 0, fmt.Errorf("pruning cache: %w", err)
	}
	return res.RowsAffected()
}

// Len returns the number of cached pages.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM pages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cached pages: %w", err)
	}
	return n, nil
}
