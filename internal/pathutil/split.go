package pathutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one parsed element of a property path.
type Segment struct {
	// Name is the raw segment text, e.g. "orders" or "[0]"
	Name string
	// Index is the sequence index when IsIndex is true
	Index int
	// IsIndex is true for "[i]" segments and bare non-negative integers
	IsIndex bool
}

// String returns the raw segment text.
func (s Segment) String() string {
	return s.Name
}

// Split parses a dotted property path into segments.
//
// Both "orders.[0].id" and "orders[0].id" are accepted, as is the bare integer
// form "orders.0.id". Empty paths and empty segments are rejected.
func Split(path string) ([]Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("pathutil: empty path")
	}
	var segments []Segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("pathutil: empty segment in %q", path)
		}
		// "name[0][1]" splits into "name", "[0]", "[1]"
		for part != "" {
			open := strings.IndexByte(part, '[')
			switch {
			case open < 0:
				segments = append(segments, nameSegment(part))
				part = ""
			case open > 0:
				segments = append(segments, nameSegment(part[:open]))
				part = part[open:]
			default:
				end := strings.IndexByte(part, ']')
				if end < 0 {
					return nil, fmt.Errorf("pathutil: unterminated index in %q", path)
				}
				idx, err := strconv.Atoi(part[1:end])
				if err != nil || idx < 0 {
					return nil, fmt.Errorf("pathutil: invalid index %q in %q", part[:end+1], path)
				}
				segments = append(segments, Segment{Name: part[:end+1], Index: idx, IsIndex: true})
				part = part[end+1:]
			}
		}
	}
	return segments, nil
}

func nameSegment(s string) Segment {
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 {
		return Segment{Name: s, Index: idx, IsIndex: true}
	}
	return Segment{Name: s}
}
