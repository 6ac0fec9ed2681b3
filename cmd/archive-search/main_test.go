// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ARCHIVE_SEARCH_MAX_RETRIES", "7")
	t.Setenv("ARCHIVE_SEARCH_CACHE_TTL", "2h")
	t.Setenv("ARCHIVE_SEARCH_CACHE_DIR", "/tmp/archive-search-test")
	initConfig()

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://annas-archive.org", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, 2*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "/tmp/archive-search-test", cfg.Cache.Dir)
	assert.True(t, cfg.Cache.Enabled)
}

func TestAuthorsCommand(t *testing.T) {
	out := execute(t, "authors", "coll.", "--publisher", "SitePoint, 2018")
	assert.Contains(t, out, "Strategy: single")
	assert.Contains(t, out, "  - SitePoint")
}

func TestCachePruneAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	t.Setenv("ARCHIVE_SEARCH_CACHE_DIR", dir)
	initConfig()

	out := execute(t, "cache", "prune", "--all")
	assert.Contains(t, out, "Removed 0 cached pages (0 remaining)")
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "archive-search dev")
}
