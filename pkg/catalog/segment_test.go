package catalog

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	testCases := []struct {
		name     string
		expected []string
	}{
		{"SaveRegular", []string{"Save", "Regular"}},
		{"DrinkBeerRegular", []string{"Drink", "Beer", "Regular"}},
		{"ArrowDownload", []string{"Arrow", "Download"}},
		{"Save", []string{"Save"}},
		{"TextT", []string{"Text", "T"}},
		// consecutive uppercase continues the segment
		{"WiFi", []string{"Wi", "Fi"}},
		{"HDCamera", []string{"HDCamera"}},
		// digits extend the current segment; the next uppercase splits
		{"Table3Columns", []string{"Table3", "Columns"}},
		{"", nil},
	}

	for _, tc := range testCases {
		got := Segments(tc.name)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Segments(%q) = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestSegmentStarts(t *testing.T) {
	testCases := []struct {
		name     string
		expected []int
	}{
		{"SaveRegular", []int{0, 4}},
		{"DrinkBeerRegular", []int{0, 5, 9}},
		{"Save", []int{0}},
		{"", nil},
	}

	for _, tc := range testCases {
		got := SegmentStarts(tc.name)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("SegmentStarts(%q) = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestHasSegment(t *testing.T) {
	testCases := []struct {
		name     string
		word     string
		expected bool
	}{
		{"DrinkBeerRegular", "beer", true},
		{"DrinkBeerRegular", "Beer", true},
		{"DrinkBeerRegular", "drink", true},
		// substring of a segment is not a segment
		{"DrinkBeerRegular", "bee", false},
		// spans a segment boundary
		{"DrinkBeerRegular", "kbeer", false},
		{"SaveRegular", "save", true},
		{"SaveRegular", "regular", true},
		{"SaveRegular", "ave", false},
	}

	for _, tc := range testCases {
		if got := HasSegment(tc.name, tc.word); got != tc.expected {
			t.Errorf("HasSegment(%q, %q) = %v, want %v", tc.name, tc.word, got, tc.expected)
		}
	}
}
