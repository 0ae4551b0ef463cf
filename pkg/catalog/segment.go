package catalog

import (
	"strings"
	"unicode"
)

// Segments splits a PascalCase name into its word segments.
// A new segment starts at string start and at any uppercase rune that
// follows a non-uppercase rune; digits and consecutive uppercase runes
// continue the current segment. "DrinkBeerRegular" -> [Drink Beer Regular].
func Segments(name string) []string {
	if name == "" {
		return nil
	}
	var segments []string
	runes := []rune(name)
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			segments = append(segments, string(runes[start:i]))
			start = i
		}
	}
	segments = append(segments, string(runes[start:]))
	return segments
}

// SegmentStarts returns the byte offsets at which segments begin in name.
// Offsets index into the original (and its lowercased) string, so they can
// be compared against strings.Index results on the lowered name.
func SegmentStarts(name string) []int {
	if name == "" {
		return nil
	}
	starts := []int{0}
	prev := rune(0)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev) {
			starts = append(starts, i)
		}
		prev = r
	}
	return starts
}

// HasSegment reports whether word equals one of name's segments,
// case-insensitively.
func HasSegment(name, word string) bool {
	for _, seg := range Segments(name) {
		if strings.EqualFold(seg, word) {
			return true
		}
	}
	return false
}
