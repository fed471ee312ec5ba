package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnfgen/bnfgen/pkg/config"
	"github.com/bnfgen/bnfgen/pkg/grammar"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for grammar expansion.
type Server struct {
	expander *grammar.Expander
	index    *grammar.SentenceIndex
	cfg      *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
}

// NewServer creates a new expansion server using stdin/stdout for IPC.
func NewServer(expander *grammar.Expander, cfg *config.Config) *Server {
	return NewServerWithIO(expander, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on explicit streams, mainly for tests.
func NewServerWithIO(expander *grammar.Expander, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		expander: expander,
		index:    grammar.NewSentenceIndex(),
		cfg:      cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes the stream.
func (s *Server) Start() error {
	log.Debug("Starting expansion server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "", "expand":
		s.handleExpand(request)
	case "validate":
		s.handleValidate(request)
	case "search":
		s.handleSearch(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleExpand expands the request's rules and responds with the sorted
// sentence list. Expansion failures map to status codes but always produce
// an empty, fail-closed result.
func (s *Server) handleExpand(request Request) {
	if len(request.Rules) == 0 {
		s.sendError(request.ID, "Missing 'r' (rules) parameter", 400)
		return
	}
	if len(request.Rules) > s.cfg.Server.MaxRules {
		s.sendError(request.ID, fmt.Sprintf("Too many rules: %d (max %d)", len(request.Rules), s.cfg.Server.MaxRules), 400)
		return
	}
	for _, rule := range request.Rules {
		if len(rule) > s.cfg.Server.MaxRuleLen {
			s.sendError(request.ID, fmt.Sprintf("Rule exceeds maximum length of %d characters", s.cfg.Server.MaxRuleLen), 400)
			return
		}
	}

	lang := request.Lang
	if lang == "" {
		lang = s.cfg.CLI.DefaultLang
	}

	start := time.Now()
	sentences, err := s.expander.Expand(request.Rules, lang)
	elapsed := time.Since(start)

	if err != nil {
		s.sendError(request.ID, err.Error(), expandErrorCode(err))
		return
	}

	if s.cfg.Expand.IndexResults {
		s.index.Add(lang, sentences)
	}

	s.send(ExpandResponse{
		ID:        request.ID,
		Sentences: sentences,
		Count:     len(sentences),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleValidate checks bracket balance for every rule in the request.
// A single invalid rule makes the whole response invalid, matching the
// expansion engine's batch semantics.
func (s *Server) handleValidate(request Request) {
	if len(request.Rules) == 0 {
		s.sendError(request.ID, "Missing 'r' (rules) parameter", 400)
		return
	}

	valid := true
	for _, rule := range request.Rules {
		if !grammar.Validate(rule) {
			valid = false
		}
	}
	s.send(ValidateResponse{ID: request.ID, Valid: valid})
}

// handleSearch queries the sentence index by prefix.
func (s *Server) handleSearch(request Request) {
	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Server.DefaultLimit
	}

	sentences := s.index.Search(request.Prefix, limit)
	s.send(SearchResponse{
		ID:        request.ID,
		Sentences: sentences,
		Count:     len(sentences),
	})
}

// expandErrorCode maps expansion sentinels to protocol status codes.
func expandErrorCode(err error) int {
	switch {
	case errors.Is(err, grammar.ErrUnsupportedLanguage):
		return 404
	case errors.Is(err, grammar.ErrEmptyInput), errors.Is(err, grammar.ErrMalformedGrammar):
		return 400
	case errors.Is(err, grammar.ErrRoundLimit):
		return 422
	}
	return 500
}

// send encodes a response onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	log.Debugf("Request %q failed: %s", id, message)
	s.send(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
