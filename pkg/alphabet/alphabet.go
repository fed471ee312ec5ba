// Package alphabet maps language identifiers to the character classes that
// define word content for that language.
//
// A class is the body of a regular-expression character class, brackets
// included, e.g. `[0-9A-Za-z'_<>\-\s]`. Classes deliberately admit digits,
// apostrophes, hyphens, underscores and angle brackets so that placeholder
// tokens such as <city> count as ordinary word content. Every class must be
// able to match a space: multi-word sentences never reach word-only status
// otherwise.
package alphabet

import (
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Class is a per-language word character class.
type Class struct {
	// ID is the lowercase language identifier the class was registered under.
	ID string
	// Expr is the regular-expression character class matching one word rune.
	Expr string
}

const common = `0-9'_<>\-\s`

// builtin holds the default language table. Keys are lowercase.
var builtin = map[string]string{
	"en": `[A-Za-z` + common + `]`,
	"de": `[A-Za-zÄÖÜäöüß` + common + `]`,
	"fr": `[A-Za-zÀÂÆÇÉÈÊËÎÏÔŒÙÛÜŸàâæçéèêëîïôœùûüÿ` + common + `]`,
	"es": `[A-Za-zÁÉÍÑÓÚÜáéíñóúü` + common + `]`,
	"it": `[A-Za-zÀÈÉÌÒÓÙàèéìòóù` + common + `]`,
	"pt": `[A-Za-zÁÂÃÀÇÉÊÍÓÔÕÚáâãàçéêíóôõú` + common + `]`,
	"nl": `[A-Za-zÉËÏéëï` + common + `]`,
}

var (
	mu      sync.RWMutex
	classes = func() map[string]string {
		m := make(map[string]string, len(builtin))
		for id, expr := range builtin {
			m[id] = expr
		}
		return m
	}()
)

// Resolve returns the character class for a language identifier.
// Lookup is case-insensitive. The second return is false when the
// language is not registered.
func Resolve(languageID string) (Class, bool) {
	id := strings.ToLower(strings.TrimSpace(languageID))

	mu.RLock()
	expr, ok := classes[id]
	mu.RUnlock()

	if !ok {
		return Class{}, false
	}
	return Class{ID: id, Expr: expr}, true
}

// Register adds or replaces a language class at runtime, typically from the
// [languages] section of the config file. The class expression must compile
// and must match a space, so the expansion fixed point stays reachable for
// multi-word sentences.
func Register(languageID, expr string) error {
	id := strings.ToLower(strings.TrimSpace(languageID))

	re, err := regexp.Compile(expr)
	if err != nil {
		log.Errorf("Rejecting alphabet class for %q: %v", id, err)
		return err
	}
	if !re.MatchString(" ") {
		log.Errorf("Rejecting alphabet class for %q: class must include the separator (whitespace)", id)
		return ErrNoSeparator
	}

	mu.Lock()
	classes[id] = expr
	mu.Unlock()

	log.Debugf("Registered alphabet class for %q", id)
	return nil
}

// Languages returns the identifiers of every registered language, unsorted.
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(classes))
	for id := range classes {
		ids = append(ids, id)
	}
	return ids
}
