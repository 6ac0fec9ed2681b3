// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive is the client for the shadow-library aggregator. It
// fetches search and record pages, hands them to the scrape package, and
// optionally resolves a fast-download link with a member key.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/archive-search/internal/httputil"
	"github.com/pdiddy/archive-search/internal/pagecache"
	"github.com/pdiddy/archive-search/internal/scrape"
	"github.com/pdiddy/archive-search/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "archive-search"
	maxPageBytes     = 16 << 20
)

var hashPattern = regexp.MustCompile(`^[a-f0-9]{32}$`)

// PageCache stores raw page bodies by URL.
type PageCache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Put(ctx context.Context, url string, body []byte) error
}

var _ PageCache = (*pagecache.Cache)(nil)

// Client talks to one aggregator instance.
type Client struct {
	cfg   types.ArchiveConfig
	base  *url.URL
	http  *http.Client
	cache PageCache
	log   io.Writer
	key   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache serves and stores page bodies through pc.
func WithCache(pc PageCache) Option {
	return func(c *Client) { c.cache = pc }
}

// WithLog sends progress and retry messages to w.
func WithLog(w io.Writer) Option {
	return func(c *Client) { c.log = w }
}

// WithKey sets the member key used for the fast-download API.
func WithKey(key string) Option {
	return func(c *Client) { c.key = strings.TrimSpace(key) }
}

// New validates cfg and returns a Client.
func New(cfg types.ArchiveConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, invalid("new", "base URL %q must be absolute", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	c := &Client{
		cfg:  cfg,
		base: base,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search runs a query and returns the parsed results, capped at MaxResults.
func (c *Client) Search(ctx context.Context, q types.SearchQuery) ([]types.Book, error) {
	const op = "search"
	if q.IsEmpty() {
		return nil, invalid(op, "query is empty")
	}
	if !q.Sort.Valid() {
		return nil, invalid(op, "unknown sort order %q", q.Sort)
	}

	u := c.searchURL(q)
	body, err := c.fetch(ctx, u, true)
	if err != nil {
		return nil, httpError(op, err)
	}

	books, err := scrape.ParseSearchResults(bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Op: op, Kind: KindParse, Err: err}
	}
	if c.cfg.MaxResults > 0 && len(books) > c.cfg.MaxResults {
		books = books[:c.cfg.MaxResults]
	}
	fmt.Fprintf(c.log, "search %q: %d results\n", q.Text, len(books))
	return books, nil
}

func (c *Client) searchURL(q types.SearchQuery) string {
	v := url.Values{}
	v.Set("q", strings.TrimSpace(q.Text))
	if q.Language != "" {
		v.Set("lang", q.Language)
	}
	if q.Extension != "" {
		v.Set("ext", strings.ToLower(strings.TrimPrefix(q.Extension, ".")))
	}
	if q.Sort != types.SortRelevance {
		v.Set("sort", string(q.Sort))
	}
	return c.endpoint("/search", v)
}

// Downloads resolves mirror and IPFS links for a record id. When a member
// key is configured the fast-download link is tried first and prepended to
// the mirrors; its failure is logged, not returned.
func (c *Client) Downloads(ctx context.Context, id string) (types.DownloadLinks, error) {
	const op = "downloads"
	id = strings.ToLower(strings.TrimSpace(id))
	if !hashPattern.MatchString(id) {
		return types.DownloadLinks{}, invalid(op, "%q is not a 32-character hex id", id)
	}

	pageURL := c.endpoint("/md5/"+id, nil)
	body, err := c.fetch(ctx, pageURL, true)
	if err != nil {
		return types.DownloadLinks{}, httpError(op, err)
	}

	base, _ := url.Parse(pageURL)
	links, err := scrape.ParseDownloadPage(bytes.NewReader(body), base)
	if err != nil {
		return types.DownloadLinks{}, &Error{Op: op, Kind: KindParse, Err: err}
	}
	links.ID = id

	if c.key != "" {
		fast, err := c.fastDownload(ctx, id)
		switch {
		case err != nil:
			fmt.Fprintf(c.log, "warning: fast download for %s: %v\n", id, err)
		case fast != "":
			links.Mirrors = prependUnique(links.Mirrors, fast)
		}
	}
	return links, nil
}

type fastDownloadResponse struct {
	DownloadURL string `json:"download_url"`
	Error       string `json:"error"`
}

// fastDownload asks the member API for a direct link. Responses carry the
// key so they are never cached.
func (c *Client) fastDownload(ctx context.Context, id string) (string, error) {
	v := url.Values{}
	v.Set("md5", id)
	v.Set("key", c.key)
	body, err := c.fetch(ctx, c.endpoint("/dyn/api/fast_download.json", v), false)
	if err != nil {
		return "", err
	}

	var resp fastDownloadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding fast download response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("fast download API: %s", resp.Error)
	}
	return resp.DownloadURL, nil
}

func (c *Client) endpoint(path string, v url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if v != nil {
		u.RawQuery = v.Encode()
	}
	return u.String()
}

// fetch GETs rawURL, going through the page cache when cacheable.
func (c *Client) fetch(ctx context.Context, rawURL string, cacheable bool) ([]byte, error) {
	if cacheable && c.cache != nil {
		body, ok, err := c.cache.Get(ctx, rawURL)
		if err != nil {
			fmt.Fprintf(c.log, "warning: page cache: %v\n", err)
		} else if ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries, c.log)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", req.URL.Path, err)
	}
	if err := httputil.CheckStatus(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", req.URL.Path, err)
	}

	if cacheable && c.cache != nil {
		if err := c.cache.Put(ctx, rawURL, body); err != nil {
			fmt.Fprintf(c.log, "warning: page cache: %v\n", err)
		}
	}
	return body, nil
}

func prependUnique(list []string, first string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, first)
	for _, s := range list {
		if s != first {
			out = append(out, s)
		}
	}
	return out
}
