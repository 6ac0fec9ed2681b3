// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"strings"
)

// TupleShape classifies the parts of a comma-separated author field.
type TupleShape int

const (
	// TupleNone means the comma strategy was not used.
	TupleNone TupleShape = iota
	// TupleLastFirst is "Last, First": two parts of at most two words.
	TupleLastFirst
	// TupleTwoNames is two complete names of three or more words each.
	TupleTwoNames
	// TupleHonorific is "Last, First, Honorific".
	TupleHonorific
	// TupleNameAndOrg is "Last, First, Organization".
	TupleNameAndOrg
	// TupleMixed is two parts where one side is short and the other long.
	// No rule covers it; it is split like a plain list and reported.
	TupleMixed
	// TupleList is any other shape; each part becomes its own segment.
	TupleList
)

func (t TupleShape) String() string {
	switch t {
	case TupleNone:
		return "none"
	case TupleLastFirst:
		return "last-first"
	case TupleTwoNames:
		return "two-names"
	case TupleHonorific:
		return "honorific"
	case TupleNameAndOrg:
		return "name-and-organization"
	case TupleMixed:
		return "mixed"
	case TupleList:
		return "list"
	default:
		return "unknown"
	}
}

// MarshalText encodes the shape by name.
func (t TupleShape) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Ambiguous reports whether the shape fell outside the documented rules.
func (t TupleShape) Ambiguous() bool {
	return t == TupleMixed
}

const shortNameWords = 2

// honorifics holds lowercased titles without their trailing period.
var honorifics = map[string]bool{
	"st":   true,
	"dr":   true,
	"sr":   true,
	"fr":   true,
	"rev":  true,
	"prof": true,
	"sir":  true,
	"mr":   true,
	"mrs":  true,
	"ms":   true,
}

// IsHonorific reports whether s is a known title such as "St." or "Dr".
func IsHonorific(s string) bool {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	return honorifics[key]
}

// ClassifyTuple decides how trimmed, non-empty comma parts are reassembled.
func ClassifyTuple(parts []string) TupleShape {
	short := func(p string) bool { return len(strings.Fields(p)) <= shortNameWords }

	switch len(parts) {
	case 2:
		a, b := short(parts[0]), short(parts[1])
		switch {
		case a && b:
			return TupleLastFirst
		case !a && !b:
			return TupleTwoNames
		default:
			return TupleMixed
		}
	case 3:
		if !short(parts[0]) || !short(parts[1]) {
			return TupleList
		}
		if IsHonorific(parts[2]) {
			return TupleHonorific
		}
		return TupleNameAndOrg
	default:
		return TupleList
	}
}

// disambiguate turns classified parts into segments.
func disambiguate(parts []string, shape TupleShape) []Segment {
	switch shape {
	case TupleLastFirst:
		return []Segment{{Text: parts[0] + ", " + parts[1]}}
	case TupleHonorific:
		return []Segment{{
			Text:     parts[2] + " " + parts[1] + " " + parts[0],
			Resolved: true,
		}}
	case TupleNameAndOrg:
		return []Segment{
			{Text: parts[1] + " " + parts[0], Resolved: true},
			{Text: parts[2]},
		}
	default:
		return rawSegments(parts)
	}
}
