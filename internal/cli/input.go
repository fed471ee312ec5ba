// Package cli handles cmd line input for DBG and testing the expansion engine interactively
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnfgen/bnfgen/internal/utils"
	"github.com/bnfgen/bnfgen/pkg/grammar"
	"github.com/charmbracelet/log"
)

// InputHandler processes grammar rules from stdin, expanding each line into
// its sentences. Flags control the target language, rule length limits and
// whether results feed the sentence index.
type InputHandler struct {
	expander     *grammar.Expander
	index        *grammar.SentenceIndex
	lang         string
	maxRuleLen   int
	checkOnly    bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(expander *grammar.Expander, lang string, maxRuleLen int, checkOnly bool) *InputHandler {
	return &InputHandler{
		expander:   expander,
		index:      grammar.NewSentenceIndex(),
		lang:       lang,
		maxRuleLen: maxRuleLen,
		checkOnly:  checkOnly,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed rule to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("bnfgen CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Printf("type a grammar rule and press Enter to see its expansions (language: %s, Ctrl+C to exit):", h.lang)

	for {
		log.Print("> ")
		rule, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		h.handleInput(rule)
	}
}

// handleInput expands a single rule and prints the resulting sentences.
func (h *InputHandler) handleInput(rule string) {
	h.requestCount++

	if len(rule) > h.maxRuleLen {
		log.Errorf("Rule too long: %d characters (max %d)", len(rule), h.maxRuleLen)
		return
	}

	if h.checkOnly {
		if grammar.Validate(rule) {
			log.Printf("rule OK: %q", rule)
		} else {
			log.Errorf("rule invalid: %q", rule)
		}
		return
	}

	start := time.Now()
	sentences, err := h.expander.Expand([]string{rule}, h.lang)
	elapsed := time.Since(start)

	if err != nil {
		log.Errorf("Expansion failed: %v", err)
		return
	}
	log.Debugf("Took [ %v ] for rule %q", elapsed, rule)

	if len(sentences) == 0 {
		log.Warnf("No sentences produced for rule %q", rule)
		return
	}
	h.index.Add(h.lang, sentences)

	log.Printf("Produced %d sentence(s) from rule %q:", len(sentences), rule)
	for i, sentence := range sentences {
		clSentence := fmt.Sprintf("\033[38;5;75m%s\033[0m", sentence)
		log.Printf("%3d. %s", i+1, clSentence)
	}
	log.Debugf("Index now holds %s sentence(s)", utils.FormatWithCommas(h.index.Len()))
}
