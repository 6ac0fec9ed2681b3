// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// clean NFC-normalizes s and collapses whitespace runs to single spaces.
func clean(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

var (
	languagePattern = regexp.MustCompile(`\[([A-Za-z]{2,3})\]`)
	sizePattern     = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s?(KB|MB|GB)$`)
	yearPattern     = regexp.MustCompile(`\b(1\d{3}|20\d{2})\b`)
)

// fileExtensions lists the formats the aggregator labels in its info line.
var fileExtensions = map[string]bool{
	"pdf": true, "epub": true, "mobi": true, "azw": true, "azw3": true,
	"djvu": true, "lit": true, "txt": true, "fb2": true, "rtf": true,
	"doc": true, "docx": true, "chm": true, "cbr": true, "cbz": true,
	"htm": true, "html": true, "zip": true, "rar": true,
}

// info holds the fields decoded from a result's gray metadata line, e.g.
// "English [en], .pdf, 🚀/lgli/zlib, 5.1MB, 📘 Book (non-fiction)".
type info struct {
	language string
	fileType string
	fileSize string
}

func parseInfoLine(line string) info {
	var out info
	if m := languagePattern.FindStringSubmatch(line); m != nil {
		out.language = strings.ToLower(m[1])
	}
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		ext := strings.ToLower(strings.TrimPrefix(field, "."))
		switch {
		case out.fileType == "" && fileExtensions[ext]:
			out.fileType = strings.ToUpper(ext)
		case out.fileSize == "" && sizePattern.MatchString(field):
			out.fileSize = strings.ToUpper(strings.Join(strings.Fields(field), ""))
		}
	}
	return out
}

// yearFrom returns the last plausible year in a publisher line, or 0.
func yearFrom(publisher string) int {
	matches := yearPattern.FindAllString(publisher, -1)
	if len(matches) == 0 {
		return 0
	}
	year, _ := strconv.Atoi(matches[len(matches)-1])
	if year < 1000 || year > 2099 {
		return 0
	}
	return year
}
