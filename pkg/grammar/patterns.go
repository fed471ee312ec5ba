package grammar

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/bnfgen/bnfgen/pkg/alphabet"
	"github.com/charmbracelet/log"
)

// Patterns holds the four structural matchers for one language, each built
// against that language's alphabet class.
type Patterns struct {
	// Group matches a mandatory alternation span: "(a|b c|d)".
	Group *regexp.Regexp
	// Optional matches an optional span: "[a|b]".
	Optional *regexp.Regexp
	// Options full-matches a bare top-level alternation with no brackets.
	Options *regexp.Regexp
	// Words full-matches a sentence made of word characters only.
	Words *regexp.Regexp

	class string
}

var (
	patternMu    sync.RWMutex
	patternCache = make(map[string]*Patterns)
)

// PatternsFor resolves the alphabet class for languageID and returns the
// compiled structural patterns, memoized per language identifier.
func PatternsFor(languageID string) (*Patterns, error) {
	cls, ok := alphabet.Resolve(languageID)
	if !ok {
		log.Errorf("Language code provided is not supported: %q", languageID)
		return nil, ErrUnsupportedLanguage
	}

	patternMu.RLock()
	cached := patternCache[cls.ID]
	patternMu.RUnlock()

	// The class expression can change when a language is re-registered from
	// config, so a cache hit is only valid for the same class.
	if cached != nil && cached.class == cls.Expr {
		return cached, nil
	}

	built, err := compilePatterns(cls)
	if err != nil {
		return nil, err
	}

	patternMu.Lock()
	patternCache[cls.ID] = built
	patternMu.Unlock()

	log.Debugf("Compiled grammar patterns for %q", cls.ID)
	return built, nil
}

// compilePatterns formats the four matchers against the class expression.
func compilePatterns(cls alphabet.Class) (*Patterns, error) {
	alternation := fmt.Sprintf(`%[1]s*(?:\|%[1]s*)*`, cls.Expr)

	group, err := regexp.Compile(`\(` + alternation + `\)`)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling group pattern for %q: %w", cls.ID, err)
	}
	optional, err := regexp.Compile(`\[` + alternation + `\]`)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling optional pattern for %q: %w", cls.ID, err)
	}
	options, err := regexp.Compile(`^(` + alternation + `)$`)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling options pattern for %q: %w", cls.ID, err)
	}
	words, err := regexp.Compile(`^` + cls.Expr + `+$`)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling word pattern for %q: %w", cls.ID, err)
	}

	return &Patterns{
		Group:    group,
		Optional: optional,
		Options:  options,
		Words:    words,
		class:    cls.Expr,
	}, nil
}
