// Package synonyms resolves query words to synonym lists through a two-tier
// lookup: a fast curated thesaurus first, then a broad lexical database.
// Results are cached per word for the process lifetime; the vocabulary is
// small and finite, so the cache never evicts.
package synonyms

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Provider returns synonyms for a word. Unknown words yield an empty list,
// not an error; errors are reserved for lookup transport failures.
type Provider interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// Cached wraps a Provider with an append-only per-word cache. Concurrent
// lookups of the same word may both hit the inner provider; last write wins,
// which is fine because results for a word are stable.
type Cached struct {
	inner Provider
	words sync.Map // word -> []string
}

// NewCached wraps inner with the process-lifetime cache.
func NewCached(inner Provider) *Cached {
	return &Cached{inner: inner}
}

// Synonyms returns the cached list when present, otherwise asks the inner
// provider and stores the result. Failed lookups are not cached, so a
// transient outage does not pin an empty result.
func (c *Cached) Synonyms(ctx context.Context, word string) ([]string, error) {
	if cached, ok := c.words.Load(word); ok {
		return cached.([]string), nil
	}
	syns, err := c.inner.Synonyms(ctx, word)
	if err != nil {
		return nil, err
	}
	c.words.Store(word, syns)
	return syns, nil
}

// Size reports how many words are cached.
func (c *Cached) Size() int {
	n := 0
	c.words.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// Tiered asks the thesaurus first and falls back to the lexicon only when
// the thesaurus has nothing. Lexicon failures propagate, so an outer Cached
// never stores an outage result; the scoring layer degrades a failed word
// to zero contribution instead of failing the search.
type Tiered struct {
	thesaurus Provider
	lexicon   Provider
	maxWords  int
}

// NewTiered builds the two-tier provider. lexicon may be nil to run with
// the curated thesaurus only. maxWords caps each result list; values < 1
// fall back to 12.
func NewTiered(thesaurus, lexicon Provider, maxWords int) *Tiered {
	if maxWords < 1 {
		maxWords = 12
	}
	return &Tiered{thesaurus: thesaurus, lexicon: lexicon, maxWords: maxWords}
}

// Synonyms implements Provider.
func (t *Tiered) Synonyms(ctx context.Context, word string) ([]string, error) {
	syns, err := t.thesaurus.Synonyms(ctx, word)
	if err != nil {
		log.Warnf("thesaurus lookup for %q: %v", word, err)
		syns = nil
	}
	if len(syns) == 0 && t.lexicon != nil {
		syns, err = t.lexicon.Synonyms(ctx, word)
		if err != nil {
			return nil, err
		}
	}
	if len(syns) > t.maxWords {
		syns = syns[:t.maxWords]
	}
	return syns, nil
}
