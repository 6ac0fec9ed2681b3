// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/archive-search/pkg/types"
)

const (
	mirrorSelector = `a.js-download-link, #md5-panel-downloads a[href]`
	ipfsMarker     = "/ipfs/"
)

// ParseDownloadPage collects mirror links and the first IPFS gateway link
// from a record detail page. Relative hrefs resolve against base. The ID
// field is left for the caller.
func ParseDownloadPage(r io.Reader, base *url.URL) (types.DownloadLinks, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return types.DownloadLinks{}, fmt.Errorf("parsing download page: %w", err)
	}

	links := types.DownloadLinks{Mirrors: []string{}}
	seen := map[string]bool{}

	doc.Find(mirrorSelector).Each(func(_ int, a *goquery.Selection) {
		u, ok := resolve(base, a.AttrOr("href", ""))
		if !ok || seen[u] || strings.Contains(u, ipfsMarker) {
			return
		}
		seen[u] = true
		links.Mirrors = append(links.Mirrors, u)
	})

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		u, ok := resolve(base, a.AttrOr("href", ""))
		if !ok || !strings.Contains(u, ipfsMarker) {
			return true
		}
		links.IPFSURL = u
		links.CID = cidFrom(u)
		return false
	})

	return links, nil
}

func resolve(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

// cidFrom returns the path segment following "/ipfs/".
func cidFrom(u string) string {
	_, rest, ok := strings.Cut(u, ipfsMarker)
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
