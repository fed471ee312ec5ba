package grammar

import "errors"

// Expansion failures are fail-closed: the caller gets one of these sentinels
// and an empty result, never a partial one.
var (
	// ErrUnsupportedLanguage means the language identifier resolved to no
	// alphabet class.
	ErrUnsupportedLanguage = errors.New("grammar: unsupported language identifier")

	// ErrEmptyInput means no non-blank rules were supplied.
	ErrEmptyInput = errors.New("grammar: no rules to expand")

	// ErrMalformedGrammar means a candidate failed bracket validation during
	// a round. One malformed candidate discards the whole batch.
	ErrMalformedGrammar = errors.New("grammar: malformed bracketing")

	// ErrRoundLimit means the working set did not reach word-only status
	// within the configured round cap.
	ErrRoundLimit = errors.New("grammar: expansion round limit exceeded")
)
