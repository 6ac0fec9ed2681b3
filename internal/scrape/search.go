// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape turns aggregator HTML pages into typed records. It never
// performs network I/O; callers hand it page bodies.
package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pdiddy/archive-search/internal/authors"
	"github.com/pdiddy/archive-search/pkg/types"
)

const recordPrefix = "/md5/"

var idPattern = regexp.MustCompile(`^[a-f0-9]{32}$`)

// RecordID extracts the content hash from a "/md5/<id>" href. Query strings
// and fragments are ignored. The boolean is false for anything that is not a
// 32-character lowercase hex id.
func RecordID(href string) (string, bool) {
	if !strings.HasPrefix(href, recordPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(href, recordPrefix)
	if i := strings.IndexAny(id, "?#/"); i >= 0 {
		id = id[:i]
	}
	return id, idPattern.MatchString(id)
}

// ParseSearchResults extracts one Book per distinct result anchor, in
// document order. Results the site lazy-loads from HTML comments are parsed
// in place.
func ParseSearchResults(r io.Reader) ([]types.Book, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	var (
		books []types.Book
		seen  = map[string]bool{}
	)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if n.Data == "a" {
				if id, ok := RecordID(attr(n, "href")); ok {
					if !seen[id] {
						seen[id] = true
						books = append(books, parseRecord(id, goquery.NewDocumentFromNode(n).Selection))
					}
					return
				}
			}
		case html.CommentNode:
			if strings.Contains(n.Data, recordPrefix) {
				if frag, err := html.Parse(strings.NewReader(n.Data)); err == nil {
					walk(frag)
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if books == nil {
		books = []types.Book{}
	}
	return books, nil
}

func parseRecord(id string, a *goquery.Selection) types.Book {
	book := types.Book{
		ID:        id,
		Title:     clean(a.Find("h3").First().Text()),
		Thumbnail: strings.TrimSpace(a.Find("img[src]").First().AttrOr("src", "")),
	}

	meta := parseInfoLine(clean(a.Find(`div[class*="text-gray-500"]`).First().Text()))
	book.Language = meta.language
	book.FileType = meta.fileType
	book.FileSize = meta.fileSize

	var rawPublisher, rawAuthor string
	italic := a.Find(`div[class*="italic"]`)
	switch italic.Length() {
	case 0:
	case 1:
		rawAuthor = clean(italic.First().Text())
	default:
		rawPublisher = clean(italic.Eq(0).Text())
		rawAuthor = clean(italic.Eq(1).Text())
	}

	book.Publisher = authors.CleanPublisherText(rawPublisher)
	book.Year = yearFrom(rawPublisher)
	book.Authors = authors.Parse(rawAuthor, authors.WithPublisher(rawPublisher))
	return book
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
