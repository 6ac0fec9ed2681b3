// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records and configuration shared by the
// archive-search packages: search results (Book), resolved download
// locations (DownloadLinks), and per-component settings.
package types

import "strings"

// SortOrder selects the ordering the aggregator applies to search results.
type SortOrder string

const (
	SortRelevance SortOrder = ""
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortLargest   SortOrder = "largest"
	SortSmallest  SortOrder = "smallest"
)

// Valid reports whether s is a known sort order.
func (s SortOrder) Valid() bool {
	switch s {
	case SortRelevance, SortNewest, SortOldest, SortLargest, SortSmallest:
		return true
	}
	return false
}

// SearchQuery holds the parameters of one search request.
type SearchQuery struct {
	// Text is the free-text query.
	Text string `json:"text" yaml:"text"`

	// Language restricts results to a language code (e.g. "en").
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Extension restricts results to a file extension (e.g. "epub").
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`

	// Sort selects result ordering; empty means relevance.
	Sort SortOrder `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// IsEmpty reports whether the query has no searchable text.
func (q SearchQuery) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}
