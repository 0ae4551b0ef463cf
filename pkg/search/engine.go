/*
Package search implements the multi-layer ranking engine over the icon
catalog. A query runs through five independent matching layers (substring,
fuzzy, concept, visual, synonym), each producing a per-entry maximum; the
maxima are summed, clamped to 100, sorted and truncated. The engine is a
pure function of its inputs apart from the synonym cache, which is an
optimization owned by the injected provider.
*/
package search

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iconserve/iconserve/pkg/catalog"
	"github.com/iconserve/iconserve/pkg/concepts"
	"github.com/iconserve/iconserve/pkg/fuzzy"
	"github.com/iconserve/iconserve/pkg/synonyms"
	"github.com/iconserve/iconserve/pkg/visual"
)

// Default search parameters.
const (
	DefaultMaxResults = 20
	DefaultThreshold  = 0.1
)

var (
	ErrEmptyQuery = errors.New("query is empty")
	ErrThreshold  = errors.New("threshold must be within [0, 1]")
	ErrMaxResults = errors.New("maxResults must be at least 1")
)

// Params are the caller-tunable knobs of one search.
type Params struct {
	MaxResults int
	Threshold  float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{MaxResults: DefaultMaxResults, Threshold: DefaultThreshold}
}

// Result is one ranked catalog entry. Read-only to callers; formatting into
// usage snippets or import statements is the host's concern.
type Result struct {
	Name           string
	BaseName       string
	Category       string
	AvailableSizes []string
	Score          float64
	Breakdown      Breakdown
	DominantLayer  string
}

// Engine scores queries against a fixed catalog. All lookup structures are
// built once in New and shared by concurrent searches.
type Engine struct {
	cat      *catalog.Catalog
	concepts concepts.Mapping
	visual   *visual.Index
	provider synonyms.Provider

	names *fuzzy.Matcher // full entry names
	bases *fuzzy.Matcher // distinct base names
	segs  *fuzzy.Matcher // distinct name segments
	keys  *fuzzy.Matcher // concept mapping keys
	tags  *fuzzy.Matcher // visual tag dictionary
}

// New wires the engine together. Every collaborator is injected; the engine
// holds no hidden globals.
func New(cat *catalog.Catalog, mapping concepts.Mapping, vindex *visual.Index, provider synonyms.Provider) *Engine {
	return &Engine{
		cat:      cat,
		concepts: mapping,
		visual:   vindex,
		provider: provider,
		names:    fuzzy.New(cat.Names()),
		bases:    fuzzy.New(cat.BaseNames()),
		segs:     fuzzy.New(cat.SegmentVocab()),
		keys:     fuzzy.New(mapping.Keys()),
		tags:     fuzzy.New(visual.Dictionary()),
	}
}

// Search ranks the catalog against query. The context bounds the synonym
// lookups only; every other layer is pure computation.
func (e *Engine) Search(ctx context.Context, query string, p Params) ([]Result, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, ErrEmptyQuery
	}
	// NaN compares false against both bounds, so reject it explicitly.
	if math.IsNaN(p.Threshold) || p.Threshold < 0 || p.Threshold > 1 {
		return nil, ErrThreshold
	}
	if p.MaxResults < 1 {
		return nil, ErrMaxResults
	}
	words := strings.Fields(normalized)

	start := time.Now()
	sheet := newSheet(e.cat.Len())

	e.substringLayer(sheet, words)
	e.fuzzyLayer(sheet, normalized, p.Threshold)
	e.conceptLayer(sheet, words, p.Threshold)
	e.visualLayer(sheet, words, p.Threshold)
	e.synonymLayer(ctx, sheet, words, p.Threshold)

	results := e.collect(sheet)
	if len(results) > p.MaxResults {
		results = results[:p.MaxResults]
	}
	log.Debugf("query %q: %d results in %v", query, len(results), time.Since(start))
	return results, nil
}

// collect folds the scoresheet into sorted results, dropping zero scores.
func (e *Engine) collect(s *sheet) []Result {
	var results []Result
	for i := 0; i < e.cat.Len(); i++ {
		total, breakdown, dominant := combine(s.sub[i], s.fuz[i], s.sem[i], s.vis[i], s.syn[i], s.exact[i])
		if total == 0 {
			continue
		}
		entry := e.cat.Entry(i)
		results = append(results, Result{
			Name:           entry.Name,
			BaseName:       entry.BaseName,
			Category:       category(entry),
			AvailableSizes: e.cat.Sizes(entry.Name),
			Score:          total,
			Breakdown:      breakdown,
			DominantLayer:  dominant,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		ri, rj := variantRank(results[i].Category), variantRank(results[j].Category)
		if ri != rj {
			return ri < rj
		}
		// Shorter names first, so "SaveRegular" outranks "SaveCopyRegular"
		// when an exact segment hit scores both at the ceiling.
		if len(results[i].Name) != len(results[j].Name) {
			return len(results[i].Name) < len(results[j].Name)
		}
		return results[i].Name < results[j].Name
	})
	return results
}

func category(entry catalog.Entry) string {
	if entry.Variant == "" {
		return "Icon"
	}
	return entry.Variant
}

// variantRank orders equal-scored entries: the default style first.
func variantRank(category string) int {
	switch category {
	case catalog.VariantRegular:
		return 0
	case catalog.VariantFilled:
		return 1
	case catalog.VariantColor:
		return 2
	default:
		return 3
	}
}
