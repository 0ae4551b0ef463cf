package synonyms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLexicon(handler http.HandlerFunc) (*Lexicon, *httptest.Server) {
	srv := httptest.NewServer(handler)
	lex := NewLexicon(time.Second)
	lex.baseURL = srv.URL
	return lex, srv
}

func TestLexiconSynonyms(t *testing.T) {
	lex, srv := testLexicon(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ml"); got != "beer" {
			t.Errorf("ml param = %q", got)
		}
		w.Write([]byte(`[
			{"word": "ale", "score": 100},
			{"word": "lager", "score": 90},
			{"word": "beer", "score": 80},
			{"word": "pale ale", "score": 70},
			{"word": "", "score": 60}
		]`))
	})
	defer srv.Close()

	syns, err := lex.Synonyms(context.Background(), "beer")
	if err != nil {
		t.Fatalf("Synonyms: %v", err)
	}
	// the query word itself, phrases and empties are dropped
	if len(syns) != 2 || syns[0] != "ale" || syns[1] != "lager" {
		t.Errorf("got %v, want [ale lager]", syns)
	}
}

func TestLexiconHTTPError(t *testing.T) {
	lex, srv := testLexicon(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	if _, err := lex.Synonyms(context.Background(), "beer"); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestLexiconBadBody(t *testing.T) {
	lex, srv := testLexicon(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	defer srv.Close()

	if _, err := lex.Synonyms(context.Background(), "beer"); err == nil {
		t.Error("expected error on malformed body")
	}
}

func TestLexiconContextCancel(t *testing.T) {
	lex, srv := testLexicon(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lex.Synonyms(ctx, "beer"); err == nil {
		t.Error("expected error for canceled context")
	}
}
