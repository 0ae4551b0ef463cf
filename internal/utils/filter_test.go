package utils

import "testing"

func TestIsValidQuery(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"save", true, "plain word"},
		{"arrow up", true, "two words"},
		{"drink-beer", true, "hyphen separator"},
		{"save2", true, "trailing digit"},
		{"", false, "empty"},
		{"12345", false, "digits only"},
		{"save!", false, "punctuation"},
		{"a@b", false, "special char"},
		{"dddd", false, "repetitive"},
		{"dd", true, "too short to call repetitive"},
	}

	for _, tc := range testCases {
		if got := IsValidQuery(tc.input); got != tc.expected {
			t.Errorf("%s: IsValidQuery(%q) = %v, want %v", tc.description, tc.input, got, tc.expected)
		}
	}
}

func TestContainsSpecialChars(t *testing.T) {
	if ContainsSpecialChars("arrow up") {
		t.Error("space should count as a separator")
	}
	if !ContainsSpecialChars("a.b") {
		t.Error("dot should count as special")
	}
}
