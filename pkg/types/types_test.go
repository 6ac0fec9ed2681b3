// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortOrderValid(t *testing.T) {
	for _, s := range []SortOrder{SortRelevance, SortNewest, SortOldest, SortLargest, SortSmallest} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, SortOrder("random").Valid())
}

func TestSearchQueryIsEmpty(t *testing.T) {
	assert.True(t, SearchQuery{}.IsEmpty())
	assert.True(t, SearchQuery{Text: " \t", Language: "en"}.IsEmpty())
	assert.False(t, SearchQuery{Text: "rails"}.IsEmpty())
}

func TestDownloadLinksIsEmpty(t *testing.T) {
	assert.True(t, DownloadLinks{ID: "x"}.IsEmpty())
	assert.False(t, DownloadLinks{IPFSURL: "https://gw/ipfs/x"}.IsEmpty())
	assert.False(t, DownloadLinks{Mirrors: []string{"https://m"}}.IsEmpty())
}

func TestBookJSONOmitsUnknownYear(t *testing.T) {
	data, err := json.Marshal(Book{ID: "abc", Title: "T", Authors: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","title":"T","authors":[]}`, string(data))
}
