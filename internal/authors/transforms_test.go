// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"duplicate name", "Casey, Elle [Casey, Elle]", "Casey, Elle"},
		{"leading bracket", "[Anon] John Smith", "John Smith"},
		{"no brackets untouched", "  John Smith ", "  John Smith "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveBrackets(tt.input))
		})
	}
}

func TestRemoveParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"role annotation", "Artur Mizera (editor)", "Artur Mizera"},
		{"annotation before comma", "Smith (ed.), John", "Smith, John"},
		{"no parentheses", "Artur Mizera", "Artur Mizera"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveParentheses(tt.input))
		})
	}
}

func TestRemovePrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by", "By Winston Churchill", "Winston Churchill"},
		{"lowercase by", "by winston churchill", "winston churchill"},
		{"illustrated by", "Illustrated By J.H. Gardner Soper", "J.H. Gardner Soper"},
		{"compiler label", "Составитель - Sheila", "Sheila"},
		{"two word label", "Русский Текст - И. Б.", "И. Б."},
		{"illustrations label", "Иллюстрации - Val", "Val"},
		{"name starting with by", "Byron Smith", "Byron Smith"},
		{"only one prefix stripped", "By By Jones", "By Jones"},
		{"bare label kept", "By", "By"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemovePrefixes(tt.input))
		})
	}
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"coll.", "Collection"},
		{"coll", "Collection"},
		{"Coll.", "Collection"},
		{"ed.", "Editor"},
		{"eds.", "Editors"},
		{"John Doe", "John Doe"},
		{"ed. Smith", "ed. Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandAbbreviations(tt.input))
		})
	}
}

func TestRemoveTrailingPeriod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Val Biro.", "Val Biro"},
		{"Martin J.", "Martin J."},
		{"Гарри Соболева.", "Гарри Соболева"},
		{"St.", "St."},
		{"John Smith", "John Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveTrailingPeriod(tt.input))
		})
	}
}

func TestReverseLastNameFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Sullivan, William", "William Sullivan"},
		{"John Doe", "John Doe"},
		{"A, B, C", "A, B, C"},
		{"Smith,", "Smith,"},
		{", John", ", John"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseLastNameFirst(tt.input))
		})
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "john doe", "John Doe"},
		{"all caps", "JOHN DOE", "John Doe"},
		{"single initial", "martin J.", "Martin J."},
		{"chained initials", "J.H. gardner", "J.H. Gardner"},
		{"lowercase initials", "j.h. gardner", "J.H. Gardner"},
		{"url", "https://www.example.com/", "https://www.example.com/"},
		{"comma kept", "hu, yang", "Hu, Yang"},
		{"inner capital kept", "mary McDonald", "Mary McDonald"},
		{"cyrillic", "и. б. соболева", "И. Б. Соболева"},
		{"hyphenated", "jean-paul sartre", "Jean-Paul Sartre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeWords(tt.input))
		})
	}
}

func TestApplyTransforms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"all steps in order", "By Sullivan, William (author)", "William Sullivan"},
		{"cyrillic with initials", "Русский Текст - И. Б. Соболева.", "И. Б. Соболева"},
		{"period before reversal", "sullivan, william.", "William Sullivan"},
		{"abbreviation", "eds.", "Editors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyTransforms(tt.input))
		})
	}
}

func TestApplyTransformsIdempotent(t *testing.T) {
	inputs := []string{
		"By Sullivan, William (author)",
		"Casey, Elle [Casey, Elle]",
		"Русский Текст - И. Б. Соболева.",
		"Illustrated by j.h. gardner soper",
		"https://www.tutorialspoint.com/",
		"coll.",
		"Martin J.",
		"St. John Chrysostom",
		"mary McDonald",
		"Smith, John, Jr.",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := ApplyTransforms(in)
			assert.Equal(t, once, ApplyTransforms(once))
		})
	}
}

func TestApplySegmentResolvedSkipsReversal(t *testing.T) {
	got := applySegment(Segment{Text: "acme, inc", Resolved: true})
	assert.Equal(t, "Acme, Inc", got)

	got = applySegment(Segment{Text: "acme, inc"})
	assert.Equal(t, "Inc Acme", got)
}
