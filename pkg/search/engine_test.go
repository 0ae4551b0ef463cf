package search

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconserve/iconserve/pkg/catalog"
	"github.com/iconserve/iconserve/pkg/concepts"
	"github.com/iconserve/iconserve/pkg/visual"
)

// stubProvider serves a fixed synonym table without any network tier.
type stubProvider struct {
	table map[string][]string
	err   error
}

func (s *stubProvider) Synonyms(_ context.Context, word string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table[word], nil
}

func testEngine(provider *stubProvider) *Engine {
	if provider == nil {
		provider = &stubProvider{}
	}
	cat := catalog.Default()
	return New(cat, concepts.Default(), visual.BuildIndex(cat.BaseNames()), provider)
}

func TestSearchValidation(t *testing.T) {
	e := testEngine(nil)
	ctx := context.Background()

	_, err := e.Search(ctx, "   ", DefaultParams())
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = e.Search(ctx, "save", Params{MaxResults: 10, Threshold: 1.5})
	assert.ErrorIs(t, err, ErrThreshold)

	_, err = e.Search(ctx, "save", Params{MaxResults: 10, Threshold: -0.1})
	assert.ErrorIs(t, err, ErrThreshold)

	_, err = e.Search(ctx, "save", Params{MaxResults: 10, Threshold: math.NaN()})
	assert.ErrorIs(t, err, ErrThreshold)

	_, err = e.Search(ctx, "save", Params{MaxResults: 0, Threshold: 0.1})
	assert.ErrorIs(t, err, ErrMaxResults)
}

func TestSearchExactSegmentScoresFull(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "save", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "SaveRegular", top.Name)
	assert.Equal(t, 100.0, top.Score)
	assert.Equal(t, LayerExact, top.DominantLayer)

	// SaveCopyRegular carries "save" as an exact segment too: same score,
	// but the tighter name sorts first
	var filled, copyReg int
	for i, r := range results {
		switch r.Name {
		case "SaveFilled":
			filled = i
			assert.Equal(t, 100.0, r.Score)
		case "SaveCopyRegular":
			copyReg = i
			assert.Equal(t, 100.0, r.Score)
		}
	}
	require.NotZero(t, filled, "SaveFilled missing")
	require.NotZero(t, copyReg, "SaveCopyRegular missing")
	assert.Less(t, copyReg, filled, "Regular variants rank before Filled at equal score")
}

func TestSearchScoresBounded(t *testing.T) {
	e := testEngine(nil)

	for _, query := range []string{"save", "agent", "beer", "arrow up", "documnt"} {
		results, err := e.Search(context.Background(), query, Params{MaxResults: 50, Threshold: 0.15})
		require.NoError(t, err, query)
		for _, r := range results {
			assert.Greater(t, r.Score, 0.0, "%s: %s", query, r.Name)
			assert.LessOrEqual(t, r.Score, 100.0, "%s: %s", query, r.Name)
		}
	}
}

func TestSearchPartialWordStaysBelowFull(t *testing.T) {
	e := testEngine(nil)

	// "agent" is not a complete segment of AgentsRegular, so the substring
	// layer contributes only the weak partial signal; fuzzy and concept
	// layers make up the rest without reaching the ceiling.
	results, err := e.Search(context.Background(), "agent", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var agents *Result
	for i := range results {
		if results[i].Name == "AgentsRegular" {
			agents = &results[i]
			break
		}
	}
	require.NotNil(t, agents, "AgentsRegular missing from results")
	assert.Less(t, agents.Score, 100.0)
	assert.NotEqual(t, LayerExact, agents.DominantLayer)
}

func TestSearchSegmentPrefixScoresPartial(t *testing.T) {
	e := testEngine(nil)

	// "agen" starts the Agents segment without completing it: the boundary
	// tier fires at the weak partial value, never the exact ceiling
	results, err := e.Search(context.Background(), "agen", Params{MaxResults: 50, Threshold: 0})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var agents *Result
	for i := range results {
		if results[i].Name == "AgentsRegular" {
			agents = &results[i]
			break
		}
	}
	require.NotNil(t, agents)
	assert.Equal(t, 15.0, agents.Breakdown.Substring)
	assert.NotEqual(t, LayerExact, agents.DominantLayer)
}

func TestSearchSegmentBeatsEmbedded(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "beer", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "DrinkBeerRegular", results[0].Name)
	assert.Equal(t, 100.0, results[0].Score)
	assert.Equal(t, LayerExact, results[0].DominantLayer)
}

func TestSearchConceptExpansion(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "delete", DefaultParams())
	require.NoError(t, err)

	names := map[string]Result{}
	for _, r := range results {
		names[r.Name] = r
	}
	// spelled directly
	require.Contains(t, names, "DeleteRegular")
	assert.Equal(t, 100.0, names["DeleteRegular"].Score)
	// reached only through the concept mapping
	require.Contains(t, names, "DismissRegular")
	assert.Greater(t, names["DismissRegular"].Breakdown.Semantic, 0.0)
	assert.Less(t, names["DismissRegular"].Score, names["DeleteRegular"].Score)
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "qzqzqzqz", DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "arrow", Params{MaxResults: 3, Threshold: 0.1})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchDeterministic(t *testing.T) {
	e := testEngine(nil)

	first, err := e.Search(context.Background(), "arrow down", DefaultParams())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Search(context.Background(), "arrow down", DefaultParams())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSearchOrdering(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "arrow", Params{MaxResults: 50, Threshold: 0.1})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		require.GreaterOrEqual(t, prev.Score, cur.Score, "scores out of order at %d", i)
		if prev.Score == cur.Score && prev.BaseName == cur.BaseName {
			// same base at the same score: Regular sorts before Filled
			assert.True(t, strings.HasSuffix(cur.Name, catalog.VariantFilled) ||
				strings.HasSuffix(cur.Name, catalog.VariantColor) ||
				prev.Name < cur.Name,
				"variant order broken: %s before %s", prev.Name, cur.Name)
		}
	}
}

func TestSearchSynonymBridge(t *testing.T) {
	provider := &stubProvider{table: map[string][]string{
		"stash": {"save"},
	}}
	e := testEngine(provider)

	results, err := e.Search(context.Background(), "stash", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var save *Result
	for i := range results {
		if results[i].Name == "SaveRegular" {
			save = &results[i]
			break
		}
	}
	require.NotNil(t, save, "SaveRegular not reached through synonym bridge")
	assert.Greater(t, save.Breakdown.Synonym, 0.0)
	assert.Equal(t, LayerSynonym, save.DominantLayer)
}

func TestSearchSynonymFailureDegrades(t *testing.T) {
	e := testEngine(&stubProvider{err: errors.New("provider down")})

	// direct layers still work
	results, err := e.Search(context.Background(), "save", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, 0.0, results[0].Breakdown.Synonym)

	// synonym-only queries come back empty, not failed
	results, err = e.Search(context.Background(), "stash", DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchResultMetadata(t *testing.T) {
	e := testEngine(nil)

	results, err := e.Search(context.Background(), "save", DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "Save", top.BaseName)
	assert.Equal(t, catalog.VariantRegular, top.Category)
	assert.NotEmpty(t, top.AvailableSizes)
}
