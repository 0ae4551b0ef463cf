// Package cli handles cmd line input and ranked lookups for DBG and testing various features
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/iconserve/iconserve/internal/utils"
	"github.com/iconserve/iconserve/pkg/search"
)

// InputHandler processes user input from stdin, running each query
// through the ranking engine. It accepts flags to control behavior such
// as result limits, the fuzzy threshold, and per-layer breakdown output.
type InputHandler struct {
	engine        *search.Engine
	minQueryLen   int
	maxQueryLen   int
	resultLimit   int
	threshold     float64
	showBreakdown bool
	noFilter      bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *search.Engine, minLen, maxLen, limit int, threshold float64, showBreakdown, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:        engine,
		minQueryLen:   minLen,
		maxQueryLen:   maxLen,
		resultLimit:   limit,
		threshold:     threshold,
		showBreakdown: showBreakdown,
		noFilter:      noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed query to handleQuery() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("iconserve CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter to see ranked icons (Ctrl+C to exit):")

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery runs a single query through the engine.
// It validates the query's length and content, then asks the engine for
// ranked matches. Results are formatted and printed to the log.
func (h *InputHandler) handleQuery(query string) {
	if len(query) < h.minQueryLen {
		log.Errorf("Query too short: %s", query)
		return
	}

	if len(query) > h.maxQueryLen {
		log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidQuery(query) {
			log.Infof("No results found for query: '%s'", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled - running all queries")
	}

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	results, err := h.engine.Search(context.Background(), query, search.Params{
		MaxResults: h.resultLimit,
		Threshold:  h.threshold,
	})
	if err != nil {
		log.Errorf("Search failed for query '%s': %v", query, err)
		return
	}

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		log.Warnf("No icons found for query: '%s'", query)
		return
	}

	log.Printf("Found %d icons for query '%s':", len(results), query)
	for i, r := range results {
		clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Name)
		log.Printf("%2d. %-40s (score: %6.2f, via %s)", i+1, clName, r.Score, r.DominantLayer)
		if h.showBreakdown {
			log.Printf("      sub=%.1f fuz=%.1f sem=%.1f vis=%.1f syn=%.1f",
				r.Breakdown.Substring, r.Breakdown.Fuzzy, r.Breakdown.Semantic,
				r.Breakdown.Visual, r.Breakdown.Synonym)
		}
	}
}
