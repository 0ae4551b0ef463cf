package synonyms

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

// fakeProvider serves a fixed table and counts lookups.
type fakeProvider struct {
	table map[string][]string
	err   error
	calls atomic.Int64
}

func (f *fakeProvider) Synonyms(_ context.Context, word string) ([]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.table[word], nil
}

func TestThesaurusLookup(t *testing.T) {
	th := NewThesaurus()

	syns, err := th.Synonyms(context.Background(), "delete")
	if err != nil {
		t.Fatalf("Synonyms: %v", err)
	}
	if len(syns) == 0 {
		t.Fatal("no synonyms for delete")
	}
	found := false
	for _, s := range syns {
		if s == "remove" {
			found = true
		}
	}
	if !found {
		t.Errorf("delete synonyms %v missing remove", syns)
	}

	syns, err = th.Synonyms(context.Background(), "qqqqq")
	if err != nil || len(syns) != 0 {
		t.Errorf("unknown word: got %v, %v", syns, err)
	}
}

func TestTieredPrefersThesaurus(t *testing.T) {
	thesaurus := &fakeProvider{table: map[string][]string{"save": {"store", "keep"}}}
	lexicon := &fakeProvider{table: map[string][]string{"save": {"preserve"}}}
	tiered := NewTiered(thesaurus, lexicon, 12)

	syns, err := tiered.Synonyms(context.Background(), "save")
	if err != nil {
		t.Fatalf("Synonyms: %v", err)
	}
	if len(syns) != 2 || syns[0] != "store" {
		t.Errorf("got %v, want thesaurus result", syns)
	}
	if lexicon.calls.Load() != 0 {
		t.Error("lexicon consulted despite thesaurus hit")
	}
}

func TestTieredFallsBackToLexicon(t *testing.T) {
	thesaurus := &fakeProvider{}
	lexicon := &fakeProvider{table: map[string][]string{"beer": {"ale", "lager"}}}
	tiered := NewTiered(thesaurus, lexicon, 12)

	syns, err := tiered.Synonyms(context.Background(), "beer")
	if err != nil {
		t.Fatalf("Synonyms: %v", err)
	}
	if len(syns) != 2 {
		t.Errorf("got %v, want lexicon result", syns)
	}
}

func TestTieredLexiconFailurePropagates(t *testing.T) {
	thesaurus := &fakeProvider{}
	lexicon := &fakeProvider{err: errors.New("network down")}
	tiered := NewTiered(thesaurus, lexicon, 12)

	if _, err := tiered.Synonyms(context.Background(), "beer"); err == nil {
		t.Fatal("lexicon outage must surface so callers never cache it")
	}
}

func TestCachedTieredOutageNotPinned(t *testing.T) {
	// the production wiring: cache around the two tiers
	thesaurus := &fakeProvider{}
	lexicon := &fakeProvider{err: errors.New("network down")}
	cached := NewCached(NewTiered(thesaurus, lexicon, 12))

	if _, err := cached.Synonyms(context.Background(), "beer"); err == nil {
		t.Fatal("expected error during the outage")
	}
	if cached.Size() != 0 {
		t.Fatalf("outage result was cached: size %d", cached.Size())
	}

	// lexicon recovers; the same word must resolve now
	lexicon.err = nil
	lexicon.table = map[string][]string{"beer": {"ale", "lager"}}
	syns, err := cached.Synonyms(context.Background(), "beer")
	if err != nil {
		t.Fatalf("lookup after recovery: %v", err)
	}
	if len(syns) != 2 {
		t.Errorf("got %v after recovery, want [ale lager]", syns)
	}
	if cached.Size() != 1 {
		t.Errorf("recovered result not cached: size %d", cached.Size())
	}
}

func TestTieredNilLexicon(t *testing.T) {
	tiered := NewTiered(&fakeProvider{}, nil, 12)

	syns, err := tiered.Synonyms(context.Background(), "beer")
	if err != nil || len(syns) != 0 {
		t.Errorf("got %v, %v", syns, err)
	}
}

func TestTieredCapsResults(t *testing.T) {
	thesaurus := &fakeProvider{table: map[string][]string{
		"big": {"a", "b", "c", "d", "e"},
	}}
	tiered := NewTiered(thesaurus, nil, 3)

	syns, _ := tiered.Synonyms(context.Background(), "big")
	if len(syns) != 3 {
		t.Errorf("got %d synonyms, want capped 3", len(syns))
	}
}

func TestCachedHitsInnerOnce(t *testing.T) {
	inner := &fakeProvider{table: map[string][]string{"save": {"store"}}}
	cached := NewCached(inner)

	for i := 0; i < 3; i++ {
		syns, err := cached.Synonyms(context.Background(), "save")
		if err != nil || len(syns) != 1 {
			t.Fatalf("lookup %d: %v, %v", i, syns, err)
		}
	}
	if inner.calls.Load() != 1 {
		t.Errorf("inner provider called %d times, want 1", inner.calls.Load())
	}
	if cached.Size() != 1 {
		t.Errorf("Size() = %d, want 1", cached.Size())
	}
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	inner := &fakeProvider{err: errors.New("boom")}
	cached := NewCached(inner)

	if _, err := cached.Synonyms(context.Background(), "save"); err == nil {
		t.Fatal("expected error from inner provider")
	}
	if cached.Size() != 0 {
		t.Error("failed lookup was cached")
	}

	// recover and retry
	inner.err = nil
	inner.table = map[string][]string{"save": {"store"}}
	syns, err := cached.Synonyms(context.Background(), "save")
	if err != nil || len(syns) != 1 {
		t.Errorf("retry after failure: %v, %v", syns, err)
	}
}
