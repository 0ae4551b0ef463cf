// Copyright 2025 The IconServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the icon search server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

IconServe provides ranked icon name search over a static catalog using
layered scoring. It can operate as a MessagePack IPC server for integration
with editors and design tools, or as a CLI application for testing and
debugging.

Each query is scored through five additive layers: direct substring hits,
fuzzy string similarity, concept expansion, visual characteristic tags,
and synonym lookups. Layer contributions are capped individually and the
combined score is clamped to 100 before ranking.

# Usage

Start the server with default settings:

	iconserve

Use a catalog snapshot and enable debug mode:

	iconserve -data catalog.bin -d

Run in CLI mode for interactive testing:

	iconserve -c -limit 10 -threshold 0.15

Without -data the builtin catalog is used. A snapshot file is a
MessagePack dump of catalog names and size lists, useful for testing
against alternative icon sets.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, ranking settings, and CLI defaults:

	[server]
	max_limit = 64
	min_query = 1
	max_query = 96

	[search]
	max_results = 20
	default_threshold = 0.1

	[synonyms]
	max_per_word = 12
	lexicon_timeout_ms = 2000
	enable_lexicon = true

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Search requests
are processed synchronously with millisecond timing information included in
responses.

Send a search request:

	{"id": "req1", "q": "save", "l": 20}

Receive ranked icons with per-layer score breakdowns:

	{"id": "req1", "r": [{"n": "SaveRegular", "sc": 100, "dom": "exact"}], "c": 1, "ms": 2}

Limit management requests allow runtime adjustment of the server cap:

	{"id": "cfg1", "action": "set_limits", "max_limit": 32}

# Server Mode

The default mode starts a MessagePack IPC server that processes search
requests from stdin and writes responses to stdout. This design enables
integration with editors and other applications through process
communication.

	srv := server.NewServer(engine, config, configPath)
	err := srv.Start()

The server handles request parsing, validation, and response formatting,
including usage and import snippets for each result.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
ranking layers. It reads queries from stdin and displays ranked icons with
per-layer breakdowns.

	inputHandler := cli.NewInputHandler(engine, minLen, maxLen, limit, threshold, showBreakdown, noFilter)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new scoring
rules before deploying to server mode.

# Ranking Engine

The core ranking functionality is provided by the search package, which
combines the catalog indexes, concept mapping, visual tag index, and
synonym providers.

	engine := search.New(cat, concepts.Default(), visual.BuildIndex(cat.BaseNames()), provider)
	results, err := engine.Search(ctx, "save file", search.DefaultParams())

Synonym lookups run concurrently per query word against a two-tier
provider: a curated thesaurus first, then an online lexicon fallback with
result caching. Lookup failures degrade to zero synonym contribution
rather than failing the query.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Catalog snapshot file (empty for the builtin catalog)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of results to return (default from config)
	-threshold float
	    Fuzzy distance threshold in [0,1]
	-config string
	    Custom config file path
	-no-lexicon
	    Disable the online synonym lexicon (curated thesaurus only)
	-no-filter
	    Disable input filtering for debugging

The application automatically resolves data and config paths relative to
the executable location, supporting both development and production
deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/iconserve/iconserve/internal/cli"
	"github.com/iconserve/iconserve/internal/utils"
	"github.com/iconserve/iconserve/pkg/catalog"
	"github.com/iconserve/iconserve/pkg/concepts"
	"github.com/iconserve/iconserve/pkg/config"
	"github.com/iconserve/iconserve/pkg/search"
	"github.com/iconserve/iconserve/pkg/server"
	"github.com/iconserve/iconserve/pkg/synonyms"
	"github.com/iconserve/iconserve/pkg/visual"
)

const (
	Version = "0.3.0-beta"
	AppName = "iconserve"
	gh      = "https://github.com/iconserve/iconserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	snapshotPath := flag.String("data", "", "Catalog snapshot file (empty for the builtin catalog)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to return")
	threshold := flag.Float64("threshold", defaultConfig.CLI.DefaultThreshold, "Fuzzy distance threshold (0 <= t <= 1)")
	configPathFlag := flag.String("config", "", "Custom config file path")
	noLexicon := flag.Bool("no-lexicon", false, "Disable the online synonym lexicon (curated thesaurus only)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - runs raw queries (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ IconServe ] Serves ranked icon search!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if configPath == "" {
		if resolved, pathErr := pathResolver.GetConfigPath("config.toml"); pathErr == nil {
			configPath = resolved
		}
	}
	log.Debugf("Using config file: (%s)", configPath)

	cat, err := loadCatalog(pathResolver, *snapshotPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
		os.Exit(1)
	}
	log.Debugf("Catalog loaded: %d entries", cat.Len())

	vindex := visual.BuildIndex(cat.BaseNames())
	log.Debugf("Visual index built: %d tagged bases", vindex.Len())

	provider := buildProvider(appConfig, *noLexicon)
	engine := search.New(cat, concepts.Default(), vindex, provider)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new scoring rules or changes should be tested in CLI mode first.
	// NOTE: Server interface has vastly different parameters compared to CLI and what it accepts.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", *limit,
			"threshold", *threshold,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine,
			appConfig.Server.MinQuery, appConfig.Server.MaxQuery,
			*limit, *threshold, appConfig.CLI.ShowBreakdown, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig, configPath)

	showStartupInfo(cat.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// loadCatalog returns the builtin catalog or one loaded from a snapshot.
func loadCatalog(pathResolver *utils.PathResolver, snapshotPath string) (*catalog.Catalog, error) {
	if snapshotPath == "" {
		log.Debug("Using builtin catalog")
		return catalog.Default(), nil
	}
	resolved, err := pathResolver.GetSnapshotPath(snapshotPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loading catalog snapshot from: %s", resolved)
	return catalog.LoadSnapshot(resolved)
}

// buildProvider wires the two-tier synonym provider from config.
func buildProvider(cfg *config.Config, noLexicon bool) synonyms.Provider {
	thesaurus := synonyms.NewThesaurus()
	var lexicon synonyms.Provider
	if cfg.Synonyms.EnableLexicon && !noLexicon {
		timeout := time.Duration(cfg.Synonyms.LexiconTimeoutMs) * time.Millisecond
		lexicon = synonyms.NewLexicon(timeout)
	}
	return synonyms.NewCached(synonyms.NewTiered(thesaurus, lexicon, cfg.Synonyms.MaxPerWord))
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(catalogSize int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" IconServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("catalog: [ %d icons ]", catalogSize)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
