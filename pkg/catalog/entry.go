// Package catalog holds the static icon catalog: entry names, their parsed
// base/variant forms, the PascalCase segmenter shared by the ranking layers,
// and a segment trie for whole-word lookups.
package catalog

import "strings"

// Style variant suffixes recognized at the end of an entry name.
const (
	VariantRegular = "Regular"
	VariantFilled  = "Filled"
	VariantColor   = "Color"
)

var variantSuffixes = []string{VariantRegular, VariantFilled, VariantColor}

// Entry is one searchable catalog unit.
type Entry struct {
	Name     string
	BaseName string
	Variant  string
}

// ParseName derives the base name and style variant from a full entry name.
// Names without a recognized suffix keep the full name as base and an empty
// variant.
func ParseName(name string) Entry {
	for _, suffix := range variantSuffixes {
		if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			return Entry{
				Name:     name,
				BaseName: strings.TrimSuffix(name, suffix),
				Variant:  suffix,
			}
		}
	}
	return Entry{Name: name, BaseName: name}
}
