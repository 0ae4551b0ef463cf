package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iconserve/iconserve/internal/logger"
	"github.com/iconserve/iconserve/pkg/config"
	"github.com/iconserve/iconserve/pkg/search"
)

// Server handles the IPC loop for icon searches.
type Server struct {
	engine     *search.Engine
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	log        *log.Logger
}

// NewServer creates a search server using stdin/stdout for IPC.
func NewServer(engine *search.Engine, cfg *config.Config, configPath string) *Server {
	return &Server{
		engine:     engine,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
		encoder:    msgpack.NewEncoder(os.Stdout),
		log:        logger.New("ipc"),
	}
}

// Start begins the request loop. It returns nil on EOF, which is the
// host's normal way of shutting the service down.
func (s *Server) Start() error {
	s.log.Debugf("starting IPC loop")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req SearchRequest
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req SearchRequest) {
	switch req.Action {
	case "":
		s.handleSearch(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case "set_limits":
		s.handleSetLimits(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSearch(req SearchRequest) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if len(req.Query) < s.config.Server.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("query shorter than %d characters", s.config.Server.MinQuery), 400)
		return
	}
	if len(req.Query) > s.config.Server.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		return
	}

	params := resolveParams(req, s.config)

	start := time.Now()
	results, err := s.engine.Search(context.Background(), req.Query, params)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	elapsed := time.Since(start)

	payloads := make([]ResultPayload, len(results))
	for i, r := range results {
		payloads[i] = ResultPayload{
			Name:          r.Name,
			BaseName:      r.BaseName,
			Category:      r.Category,
			Sizes:         r.AvailableSizes,
			Score:         r.Score,
			Substring:     r.Breakdown.Substring,
			Fuzzy:         r.Breakdown.Fuzzy,
			Semantic:      r.Breakdown.Semantic,
			Visual:        r.Breakdown.Visual,
			Synonym:       r.Breakdown.Synonym,
			DominantLayer: r.DominantLayer,
			Usage:         renderUsage(r.Name),
			Import:        renderImport(r.Name),
		}
	}

	s.send(SearchResponse{
		ID:        req.ID,
		Results:   payloads,
		Count:     len(payloads),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// resolveParams fills in config defaults and clamps the limit. An absent
// threshold takes the config default; an explicit 0 stays 0 (exact-only).
func resolveParams(req SearchRequest, cfg *config.Config) search.Params {
	params := search.Params{
		MaxResults: req.Limit,
		Threshold:  cfg.Search.DefaultThreshold,
	}
	if params.MaxResults < 1 {
		params.MaxResults = cfg.Search.MaxResults
	}
	if params.MaxResults > cfg.Server.MaxLimit {
		params.MaxResults = cfg.Server.MaxLimit
	}
	if req.Threshold != nil {
		params.Threshold = *req.Threshold
	}
	return params
}

func (s *Server) handleSetLimits(req SearchRequest) {
	if req.MaxLimit == nil {
		s.sendError(req.ID, "set_limits needs 'max_limit'", 400)
		return
	}
	if err := s.config.Update(s.configPath, req.MaxLimit); err != nil {
		s.log.Errorf("persisting config: %v", err)
		s.sendError(req.ID, "failed to persist config", 500)
		return
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

// send marshals a response and writes it to stdout. Encoding failures are
// answered with a generic 500 so the client never hangs on a request.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// renderUsage and renderImport are the host-side templating for results.
func renderUsage(name string) string {
	return fmt.Sprintf("<%s />", name)
}

func renderImport(name string) string {
	return fmt.Sprintf("import { %s } from \"@iconserve/icons\";", name)
}
