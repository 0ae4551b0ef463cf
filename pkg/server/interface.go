/*
Package server implements msgpack IPC for the icon search service.

The protocol is a request/response loop over stdin/stdout using binary
msgpack encoding. Each message carries an ID the response echoes back.

A search request looks like:

	{"id": "req_001", "q": "save file", "l": 20, "t": 0.1}

and comes back ranked, with the per-layer score breakdown attached:

	{"id": "req_001", "r": [{"n": "SaveRegular", "cat": "Regular", "sc": 100, ...}], "c": 1, "ms": 3}

Config messages adjust server limits at runtime without restart:

	{"id": "cfg_001", "action": "set_limits", "max_limit": 48}

A search that matches nothing is a success with an empty result array, not
an error; error responses are reserved for malformed requests and
out-of-range parameters.
*/
package server

// SearchRequest - ranked catalog search. Threshold is a pointer so an
// explicit 0 (exact-only fuzzy matching) is distinguishable from "use the
// config default".
type SearchRequest struct {
	ID        string   `msgpack:"id"`
	Query     string   `msgpack:"q"`
	Limit     int      `msgpack:"l,omitempty"`
	Threshold *float64 `msgpack:"t,omitempty"`
	Action    string   `msgpack:"action,omitempty"` // "", "health", "set_limits"
	MaxLimit  *int     `msgpack:"max_limit,omitempty"`
}

// ResultPayload - one ranked entry plus rendered usage snippets. Snippet
// rendering is host templating; the ranking core never sees it.
type ResultPayload struct {
	Name          string   `msgpack:"n"`
	BaseName      string   `msgpack:"b"`
	Category      string   `msgpack:"cat"`
	Sizes         []string `msgpack:"sz,omitempty"`
	Score         float64  `msgpack:"sc"`
	Substring     float64  `msgpack:"sub"`
	Fuzzy         float64  `msgpack:"fuz"`
	Semantic      float64  `msgpack:"sem"`
	Visual        float64  `msgpack:"vis"`
	Synonym       float64  `msgpack:"syn"`
	DominantLayer string   `msgpack:"dom"`
	Usage         string   `msgpack:"use"`
	Import        string   `msgpack:"imp"`
}

// SearchResponse - ranked results with timing info
type SearchResponse struct {
	ID        string          `msgpack:"id"`
	Results   []ResultPayload `msgpack:"r"`
	Count     int             `msgpack:"c"`
	TimeTaken int64           `msgpack:"ms"`
}

// StatusResponse - health and config acknowledgements
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
