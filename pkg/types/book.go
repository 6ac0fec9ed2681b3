// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Book is one record from an aggregator search-results page.
type Book struct {
	// ID is the 32-character lowercase hex content hash (MD5) of the file.
	ID string `json:"id" yaml:"id"`

	// Title is the listing title.
	Title string `json:"title" yaml:"title"`

	// Authors lists normalized display names in listing order.
	Authors []string `json:"authors" yaml:"authors"`

	// Publisher is the publisher line with any trailing year removed.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// Language is the language code shown in the listing (e.g. "en", "grc").
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// FileType is the uppercased file extension (e.g. "PDF", "EPUB").
	FileType string `json:"file_type,omitempty" yaml:"file_type,omitempty"`

	// FileSize is the size as displayed, without spaces (e.g. "5.1MB").
	FileSize string `json:"file_size,omitempty" yaml:"file_size,omitempty"`

	// Year is the publication year, or 0 when the listing has none.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Thumbnail is the cover image URL.
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// DownloadLinks holds the download locations resolved for one record.
type DownloadLinks struct {
	// ID is the content hash the links were resolved for.
	ID string `json:"id" yaml:"id"`

	// Mirrors lists absolute mirror URLs in page order.
	Mirrors []string `json:"mirrors" yaml:"mirrors"`

	// IPFSURL is a gateway URL for the content-addressed copy, if any.
	IPFSURL string `json:"ipfs_url,omitempty" yaml:"ipfs_url,omitempty"`

	// CID is the IPFS content identifier taken from IPFSURL.
	CID string `json:"cid,omitempty" yaml:"cid,omitempty"`
}

// IsEmpty reports whether no download location was found.
func (d DownloadLinks) IsEmpty() bool {
	return len(d.Mirrors) == 0 && d.IPFSURL == ""
}
