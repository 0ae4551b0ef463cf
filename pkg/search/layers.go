package search

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/iconserve/iconserve/pkg/catalog"
)

// sheet accumulates the per-entry layer maxima for one query. Indexed by
// catalog entry index; discarded once results are collected.
type sheet struct {
	sub   []float64
	fuz   []float64
	sem   []float64
	vis   []float64
	syn   []float64
	exact []bool
}

func newSheet(n int) *sheet {
	return &sheet{
		sub:   make([]float64, n),
		fuz:   make([]float64, n),
		sem:   make([]float64, n),
		vis:   make([]float64, n),
		syn:   make([]float64, n),
		exact: make([]bool, n),
	}
}

func bump(slot []float64, i int, pts float64) {
	if pts > slot[i] {
		slot[i] = pts
	}
}

// substring tiers. EXACT alone carries the full cap; the partial tiers
// collapse to the same weak positive signal.
type subTier int

const (
	tierNone subTier = iota
	tierEmbedded
	tierBoundary
	tierExact
)

// substringTier classifies how word relates to entry i's name: a complete
// segment, a containment starting at a segment boundary, or an embedded
// containment spanning arbitrary positions.
func (e *Engine) substringTier(i int, word string) subTier {
	lower := e.cat.LowerName(i)
	pos := strings.Index(lower, word)
	if pos < 0 {
		return tierNone
	}
	for ; pos >= 0; pos = next(lower, word, pos) {
		for _, start := range e.cat.SegmentOffsets(i) {
			if start == pos {
				return tierBoundary
			}
		}
	}
	return tierEmbedded
}

func next(s, word string, pos int) int {
	rel := strings.Index(s[pos+1:], word)
	if rel < 0 {
		return -1
	}
	return pos + 1 + rel
}

// substringLayer takes the max tier across query words per entry. Exact
// segment hits resolve through the segment trie, boundary hits within a
// single segment through its subtree; only embedded and cross-segment
// containment falls back to a scan over the precomputed lowercase names.
func (e *Engine) substringLayer(s *sheet, words []string) {
	for _, word := range words {
		for _, i := range e.cat.ExactSegment(word) {
			s.exact[i] = true
			bump(s.sub, i, pointsExactSegment)
		}
		for _, i := range e.cat.SegmentPrefix(word) {
			if !s.exact[i] {
				bump(s.sub, i, pointsPartialName)
			}
		}
		for i := 0; i < e.cat.Len(); i++ {
			if s.exact[i] || s.sub[i] >= pointsPartialName {
				continue
			}
			if e.substringTier(i, word) != tierNone {
				bump(s.sub, i, pointsPartialName)
			}
		}
	}
}

// fuzzyLayer matches the whole query string against names and base names,
// keeping the best distance per entry.
func (e *Engine) fuzzyLayer(s *sheet, query string, threshold float64) {
	for _, m := range e.names.Matches(query, threshold) {
		bump(s.fuz, m.Index, (1-m.Distance)*capFuzzy)
	}
	for _, m := range e.bases.Matches(query, threshold) {
		for _, i := range e.cat.EntriesForBase(m.Value) {
			bump(s.fuz, i, (1-m.Distance)*capFuzzy)
		}
	}
}

// scoreFragment expands one concept fragment: fuzzy-match it against the
// segment vocabulary, then credit entries carrying the matched segment as a
// complete PascalCase word. The whole-segment requirement guards against a
// short fragment firing inside an unrelated longer word.
func (e *Engine) scoreFragment(slot []float64, fragment string, threshold, points float64) {
	for _, m := range e.segs.Matches(fragment, threshold) {
		pts := points * (1 - m.Distance)
		for _, i := range e.cat.ExactSegment(m.Value) {
			bump(slot, i, pts)
		}
	}
}

// conceptLayer runs direct and fuzzy concept-key lookups per query word.
func (e *Engine) conceptLayer(s *sheet, words []string, threshold float64) {
	for _, word := range words {
		for _, fragment := range e.concepts.Lookup(word) {
			e.scoreFragment(s.sem, fragment, threshold, pointsConcept)
		}
		// Near-miss keys expand too, double-penalized by key distance.
		for _, km := range e.keys.Matches(word, threshold) {
			if km.Distance == 0 {
				continue // covered by the direct lookup above
			}
			keyFactor := 1 - km.Distance
			for _, fragment := range e.concepts.Lookup(km.Value) {
				e.scoreFragment(s.sem, fragment, threshold, pointsConceptFuzzy*keyFactor)
			}
		}
	}
}

// visualLayer credits entries whose base name carries a tag the query word
// names, exactly or approximately. Tag hits apply to the Regular and Filled
// renditions of the base.
func (e *Engine) visualLayer(s *sheet, words []string, threshold float64) {
	for _, word := range words {
		for _, tm := range e.tags.Matches(word, threshold) {
			pts := pointsVisualFuzzy * (1 - tm.Distance)
			if tm.Distance == 0 {
				pts = pointsVisualExact
			}
			for _, base := range e.visual.BasesFor(tm.Index) {
				for _, i := range e.cat.EntriesForBase(base) {
					switch e.cat.Entry(i).Variant {
					case catalog.VariantRegular, catalog.VariantFilled:
						bump(s.vis, i, pts)
					}
				}
			}
		}
	}
}

// synonymLayer fetches synonyms for every query word in parallel, waits for
// all of them, then scores each synonym two ways: through the concept
// mapping when the synonym is itself a key (bridging scores higher), and
// directly against names and base names. A provider failure zeroes that
// word's contribution and nothing else.
func (e *Engine) synonymLayer(ctx context.Context, s *sheet, words []string, threshold float64) {
	perWord := make([][]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			syns, err := e.provider.Synonyms(gctx, word)
			if err != nil {
				log.Warnf("synonyms for %q unavailable: %v", word, err)
				return nil
			}
			perWord[i] = syns
			return nil
		})
	}
	// Goroutines never return errors; Wait is a settle barrier.
	_ = g.Wait()

	for _, syns := range perWord {
		for _, syn := range syns {
			syn = strings.ToLower(syn)
			for _, fragment := range e.concepts.Lookup(syn) {
				e.scoreFragment(s.syn, fragment, threshold, pointsSynonymBridge)
			}
			for _, m := range e.names.Matches(syn, threshold) {
				bump(s.syn, m.Index, pointsSynonymDirect*(1-m.Distance))
			}
			for _, m := range e.bases.Matches(syn, threshold) {
				for _, i := range e.cat.EntriesForBase(m.Value) {
					bump(s.syn, i, pointsSynonymDirect*(1-m.Distance))
				}
			}
		}
	}
}
