// Package fuzzy wraps go-edlib similarity scoring into the threshold model
// the ranking layers share: a normalized distance in [0,1] where 0 means
// identical, matched against a caller-tunable strictness knob.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

// Match is one corpus candidate within threshold of a query.
type Match struct {
	Value    string
	Index    int
	Distance float64
}

// Matcher scores a query against a fixed corpus. Comparison is
// case-insensitive; the lowered corpus is precomputed once.
type Matcher struct {
	corpus []string
	lower  []string
}

// New builds a matcher over corpus. The slice is not copied; the corpus is
// immutable for the process lifetime.
func New(corpus []string) *Matcher {
	lower := make([]string, len(corpus))
	for i, s := range corpus {
		lower[i] = strings.ToLower(s)
	}
	return &Matcher{corpus: corpus, lower: lower}
}

// Distance returns the normalized distance between a and b: 1 minus their
// Jaro-Winkler similarity. 0 is identical, 1 shares nothing.
func Distance(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 0
	}
	if a == "" || b == "" {
		return 1
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		log.Errorf("similarity %q vs %q: %v", a, b, err)
		return 1
	}
	d := 1 - float64(sim)
	if d < 0 {
		return 0
	}
	return d
}

// Matches returns every corpus entry whose distance from query is at or
// below threshold, closest first. Threshold 0 admits exact matches only;
// ties break on corpus order so results are deterministic.
func (m *Matcher) Matches(query string, threshold float64) []Match {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var matches []Match
	for i, candidate := range m.lower {
		d := Distance(q, candidate)
		if d <= threshold {
			matches = append(matches, Match{Value: m.corpus[i], Index: i, Distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// Best returns the closest corpus entry within threshold, if any.
func (m *Matcher) Best(query string, threshold float64) (Match, bool) {
	matches := m.Matches(query, threshold)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
