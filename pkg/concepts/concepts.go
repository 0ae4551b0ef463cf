// Package concepts maps everyday words and intents to catalog name
// fragments, so a query like "save" can reach entries named Save, Document
// or ArrowDownload without sharing any literal text with them.
package concepts

import "sort"

// Mapping is the curated word to name-fragment dictionary. Keys are
// lowercase single words; fragments are PascalCase words expected to occur
// as segments of catalog entry names. Fragments with no catalog match are
// tolerated and simply contribute nothing.
type Mapping map[string][]string

// Default returns the hand-authored mapping bundled with the engine.
func Default() Mapping {
	return conceptTable
}

// Lookup returns the fragment list for a key, nil when absent.
func (m Mapping) Lookup(word string) []string {
	return m[word]
}

// Keys returns every mapping key in sorted order. The order matters for
// deterministic fuzzy key lookups.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
