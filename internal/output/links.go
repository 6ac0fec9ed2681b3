// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"

	"github.com/pdiddy/archive-search/pkg/types"
)

// LinksTable lists the download locations for one record.
func LinksTable(links types.DownloadLinks, w io.Writer) {
	fmt.Fprintf(w, "Downloads for %s\n", links.ID)
	if links.IsEmpty() {
		fmt.Fprintln(w, "  no download links found")
		return
	}
	for i, m := range links.Mirrors {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, m)
	}
	if links.IPFSURL != "" {
		fmt.Fprintf(w, "  IPFS: %s\n", links.IPFSURL)
		fmt.Fprintf(w, "  CID:  %s\n", links.CID)
	}
}

// LinksJSON writes links as indented JSON to w.
func LinksJSON(links types.DownloadLinks, w io.Writer) error {
	return writeJSON(w, links)
}
