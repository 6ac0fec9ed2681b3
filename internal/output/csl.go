package output

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/archive-search/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID        string    `yaml:"id"`
	Type      string    `yaml:"type"`
	Title     string    `yaml:"title"`
	Author    []CSLName `yaml:"author,omitempty"`
	Publisher string    `yaml:"publisher,omitempty"`
	Issued    *CSLDate  `yaml:"issued,omitempty"`
	Language  string    `yaml:"language,omitempty"`
	Medium    string    `yaml:"medium,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// BooksCSL writes books as a CSL-YAML list to w.
func BooksCSL(books []types.Book, w io.Writer) error {
	items := make([]CSLItem, len(books))
	for i, b := range books {
		items[i] = toCSLItem(b)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(b types.Book) CSLItem {
	item := CSLItem{
		ID:        b.ID,
		Type:      "book",
		Title:     b.Title,
		Publisher: b.Publisher,
		Language:  b.Language,
		Medium:    b.FileType,
	}
	for _, a := range b.Authors {
		item.Author = append(item.Author, cslName(a))
	}
	if b.Year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{b.Year}}}
	}
	return item
}

// cslName splits a display name on its last space into given and family.
// Single tokens and URLs stay literal.
func cslName(name string) CSLName {
	name = strings.TrimSpace(name)
	idx := strings.LastIndex(name, " ")
	if idx < 0 || strings.Contains(name, "://") {
		return CSLName{Literal: name}
	}
	return CSLName{Given: name[:idx], Family: name[idx+1:]}
}
