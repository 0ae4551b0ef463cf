package synonyms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const defaultLexiconURL = "https://api.datamuse.com/words"

// Lexicon is the slow second tier: a broad lexical database queried over
// HTTP (Datamuse "means like" endpoint). It only runs for words the curated
// thesaurus does not know.
type Lexicon struct {
	baseURL string
	client  *http.Client
}

// NewLexicon builds the HTTP-backed lexicon. timeout bounds each lookup;
// zero means 2s.
func NewLexicon(timeout time.Duration) *Lexicon {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Lexicon{
		baseURL: defaultLexiconURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type lexiconEntry struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Synonyms implements Provider. Multi-word results are dropped: catalog
// segments are single words, so phrases can never match anything.
func (l *Lexicon) Synonyms(ctx context.Context, word string) ([]string, error) {
	q := url.Values{}
	q.Set("ml", word)
	q.Set("max", "15")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building lexicon request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lexicon lookup %q: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lexicon lookup %q: status %d", word, resp.StatusCode)
	}
	var entries []lexiconEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding lexicon response for %q: %w", word, err)
	}

	var syns []string
	for _, e := range entries {
		if e.Word == "" || e.Word == word || strings.Contains(e.Word, " ") {
			continue
		}
		syns = append(syns, e.Word)
	}
	log.Debugf("lexicon: %q -> %d synonyms", word, len(syns))
	return syns, nil
}
