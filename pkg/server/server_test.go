package server

import (
	"testing"

	"github.com/iconserve/iconserve/pkg/config"
)

func TestResolveParams(t *testing.T) {
	cfg := config.DefaultConfig()

	// absent knobs take the config defaults
	p := resolveParams(SearchRequest{Query: "save"}, cfg)
	if p.MaxResults != cfg.Search.MaxResults {
		t.Errorf("MaxResults = %d, want default %d", p.MaxResults, cfg.Search.MaxResults)
	}
	if p.Threshold != cfg.Search.DefaultThreshold {
		t.Errorf("Threshold = %v, want default %v", p.Threshold, cfg.Search.DefaultThreshold)
	}

	// an explicit zero threshold means exact-only, not "use the default"
	zero := 0.0
	p = resolveParams(SearchRequest{Query: "save", Threshold: &zero}, cfg)
	if p.Threshold != 0 {
		t.Errorf("explicit 0 threshold coerced to %v", p.Threshold)
	}

	custom := 0.3
	p = resolveParams(SearchRequest{Query: "save", Threshold: &custom}, cfg)
	if p.Threshold != 0.3 {
		t.Errorf("Threshold = %v, want 0.3", p.Threshold)
	}

	// limits clamp to the server cap
	p = resolveParams(SearchRequest{Query: "save", Limit: 500}, cfg)
	if p.MaxResults != cfg.Server.MaxLimit {
		t.Errorf("MaxResults = %d, want clamped %d", p.MaxResults, cfg.Server.MaxLimit)
	}
}

func TestRenderSnippets(t *testing.T) {
	if got := renderUsage("SaveRegular"); got != "<SaveRegular />" {
		t.Errorf("renderUsage = %q", got)
	}
	want := `import { SaveRegular } from "@iconserve/icons";`
	if got := renderImport("SaveRegular"); got != want {
		t.Errorf("renderImport = %q", got)
	}
}
