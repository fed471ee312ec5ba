/*
Package grammar expands condensed grammar notation into the exhaustive set of
literal sentences it denotes.

A rule mixes literal words with three constructs: mandatory alternation
groups "(a|b)", optional spans "[c|d]" (absent or one alternative), and bare
pipe-separated alternation at the top level. Expansion drives a working set
of partially-expanded strings round by round until every candidate contains
nothing but word characters for the target language, then returns the
deduplicated, sorted sentences:

	sentences, err := grammar.Expand([]string{"(hi|hello) [there]"}, "en")
	// ["hello", "hello there", "hi", "hi there"]

Each round runs three phases: top-level alternation is split apart, the
first innermost group of every candidate is resolved, then the first
innermost optional. Candidates are never mutated in place; every phase
produces a fresh set. A single malformed rule anywhere in a round aborts the
whole call with ErrMalformedGrammar and no partial output.
*/
package grammar

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bnfgen/bnfgen/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultMaxRounds bounds the expansion loop. Hand-authored grammars settle
// in a handful of rounds; the cap only exists so a class that never reports
// word-only status cannot spin forever.
const DefaultMaxRounds = 64

// Options configures an Expander.
type Options struct {
	// MaxRounds caps the number of expansion rounds. Zero or negative means
	// DefaultMaxRounds.
	MaxRounds int
}

// Expander expands grammar rules for one language at a time. The zero value
// is not usable; call NewExpander.
type Expander struct {
	maxRounds int
}

// NewExpander returns an Expander with the given options applied.
func NewExpander(opts Options) *Expander {
	rounds := opts.MaxRounds
	if rounds <= 0 {
		rounds = DefaultMaxRounds
	}
	return &Expander{maxRounds: rounds}
}

// Expand expands rules with a default Expander. See Expander.Expand.
func Expand(rules []string, languageID string) ([]string, error) {
	return NewExpander(Options{}).Expand(rules, languageID)
}

// Expand expands every rule jointly into the sorted, deduplicated list of
// word-only sentences. The rules share one working set across rounds, so
// identical intermediate candidates from distinct rules collapse.
//
// All failures are fail-closed: a nil slice and one of the package sentinel
// errors, never a partial result.
func (e *Expander) Expand(rules []string, languageID string) ([]string, error) {
	patterns, err := PatternsFor(languageID)
	if err != nil {
		return nil, err
	}

	working := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		working[rule] = struct{}{}
	}
	if len(working) == 0 {
		log.Error("No rule(s) provided to expand.")
		return nil, ErrEmptyInput
	}

	for round := 1; round <= e.maxRounds; round++ {
		working, err = e.expandRound(working, patterns)
		if err != nil {
			return nil, err
		}

		if allWordOnly(working, patterns) {
			log.Debugf("Expansion settled after %d round(s) with %d sentence(s)", round, len(working))
			return finalize(working), nil
		}
	}

	log.Errorf("Expansion did not settle within %d rounds, giving up.", e.maxRounds)
	return nil, ErrRoundLimit
}

// expandRound runs the three phases once over the working set.
func (e *Expander) expandRound(working map[string]struct{}, patterns *Patterns) (map[string]struct{}, error) {
	// Phase A: a candidate that is, in its entirety, a bare pipe-separated
	// alternation splits into its alternatives.
	afterOptions := make(map[string]struct{}, len(working))
	for candidate := range working {
		match := patterns.Options.FindStringSubmatch(candidate)
		if match == nil || match[1] == "" {
			afterOptions[candidate] = struct{}{}
			continue
		}
		for _, option := range SplitOptions(match[1]) {
			afterOptions[option] = struct{}{}
		}
	}

	// Phase B: resolve the first atomic group of each candidate. A single
	// malformed candidate poisons the whole batch.
	afterGroups := make(map[string]struct{}, len(afterOptions))
	for candidate := range afterOptions {
		if !Validate(candidate) {
			log.Errorf("Aborting expansion: rule %q is malformed.", candidate)
			return nil, ErrMalformedGrammar
		}

		span, found := firstAtomicSpan(candidate, '(', ')', patterns.Group)
		if !found {
			afterGroups[candidate] = struct{}{}
			continue
		}
		for expansion := range Substitute(candidate, span) {
			afterGroups[strings.TrimSpace(expansion)] = struct{}{}
		}
	}

	// Phase C: resolve the first atomic optional of each candidate to
	// "absent" or to each of its alternatives.
	afterOptionals := make(map[string]struct{}, len(afterGroups))
	for candidate := range afterGroups {
		span, found := firstAtomicSpan(candidate, '[', ']', patterns.Optional)
		if !found {
			afterOptionals[candidate] = struct{}{}
			continue
		}

		absent := utils.CollapseDoubleSpaces(strings.Replace(candidate, span, "", 1))
		afterOptionals[strings.TrimSpace(absent)] = struct{}{}

		for expansion := range Substitute(candidate, span) {
			afterOptionals[strings.TrimSpace(expansion)] = struct{}{}
		}
	}

	return afterOptionals, nil
}

// firstAtomicSpan returns the first innermost span delimited by opener and
// closer whose content also satisfies the structural pattern for the active
// language. The scan is explicit: take each closing delimiter left to right,
// walk backward to its opener, and reject the pair if any other bracket lies
// between them. This pins the "innermost, leftmost" selection down without
// relying on a pattern engine's matching order.
func firstAtomicSpan(candidate string, opener, closer rune, pattern *regexp.Regexp) (string, bool) {
	runes := []rune(candidate)

	for end, char := range runes {
		if char != closer {
			continue
		}

		start := end - 1
		nested := false
		for ; start >= 0; start-- {
			switch runes[start] {
			case opener:
			case '(', ')', '[', ']':
				nested = true
			default:
				continue
			}
			break
		}
		if start < 0 || nested {
			continue
		}

		span := string(runes[start : end+1])
		if pattern.FindString(span) != span {
			continue
		}
		return span, true
	}
	return "", false
}

// IsWordOnly reports whether the candidate is a finished sentence for the
// language: nothing but alphabet word characters and separators, matched in
// full.
func IsWordOnly(candidate, languageID string) bool {
	patterns, err := PatternsFor(languageID)
	if err != nil {
		return false
	}
	return patterns.Words.MatchString(candidate)
}

// allWordOnly reports whether every candidate in the set is terminal. The
// empty string counts as terminal here; finalize drops it from the output.
func allWordOnly(working map[string]struct{}, patterns *Patterns) bool {
	for candidate := range working {
		if candidate == "" {
			continue
		}
		if !patterns.Words.MatchString(candidate) {
			return false
		}
	}
	return true
}

// finalize turns the terminal working set into the sorted output list,
// dropping the empty sentence produced by rules like "[a]".
func finalize(working map[string]struct{}) []string {
	sentences := make([]string, 0, len(working))
	for candidate := range working {
		if candidate == "" {
			continue
		}
		sentences = append(sentences, candidate)
	}
	sort.Strings(sentences)
	return sentences
}
