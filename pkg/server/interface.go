/*
Package server implements msgpack IPC for grammar expansion services.

The server provides a minimal interface for rule expansion using msgpack
serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports expansion requests,
standalone bracket validation, and prefix queries against the index of
previously generated sentences. Messages are processed synchronously with
timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID field and an action; a missing action defaults to "expand".

Expansion requests use mainly this structure:

	{"id": "req_001", "r": ["(hi|hello) [there]"], "lang": "en"}

The server responds with the sorted sentence list:

	{"id": "req_001", "s": ["hello", "hello there", "hi", "hi there"], "c": 4, "t": 145}

Validation requests check bracket balance without expanding:

	{"id": "val_001", "action": "validate", "r": ["(a|b]"]}

Search requests query the accumulated sentence index by prefix:

	{"id": "idx_001", "action": "search", "p": "hello", "l": 10}

Failed operations produce an error message with a status code instead of a
result; expansion failures are fail-closed and never return partial output.
*/
package server

// Request is the inbound message envelope. Which fields matter depends on
// the action.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action,omitempty"` // "expand" (default), "validate", "search", "health"
	Rules  []string `msgpack:"r,omitempty"`
	Lang   string   `msgpack:"lang,omitempty"`
	Prefix string   `msgpack:"p,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
}

// ExpandResponse carries the expanded sentences for one request.
type ExpandResponse struct {
	ID        string   `msgpack:"id"`
	Sentences []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"` // microseconds
}

// ValidateResponse reports per-rule bracket validation results.
type ValidateResponse struct {
	ID    string `msgpack:"id"`
	Valid bool   `msgpack:"v"`
}

// SearchResponse carries sentences matching an index prefix query.
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Sentences []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
}

// StatusResponse signals readiness and health check results.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for failed requests.
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
