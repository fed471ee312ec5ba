package grammar

import (
	"github.com/bnfgen/bnfgen/internal/utils"
	"github.com/charmbracelet/log"
)

// Validate reports whether every group and optional in the rule is
// appropriately closed and matched. Sibling spans may interleave freely but
// crossing nesting like "(a]" is rejected, as are unmatched delimiters.
// Every problem is logged with its character position before false is
// returned; callers decide what to do with a failed rule.
func Validate(bnf string) bool {
	type opener struct {
		kind  rune
		index int
	}

	var stack []opener
	index := 0

	for _, char := range bnf {
		switch char {
		case '(', '[':
			stack = append(stack, opener{kind: char, index: index})

		case ')', ']':
			expected := '('
			if char == ']' {
				expected = '['
			}

			if len(stack) == 0 {
				log.Warnf("The rule %q has a closing %q with no opener at the %s character. %q must be preceded with %q.",
					bnf, char, utils.Ordinal(index), char, expected)
				return false
			}

			top := stack[len(stack)-1]
			if top.kind != expected {
				log.Warnf("The rule %q has a mismatch at the %s character. Expected closing for %q, received %q.",
					bnf, utils.Ordinal(index), top.kind, char)
				return false
			}
			stack = stack[:len(stack)-1]
		}
		index++
	}

	if len(stack) == 0 {
		return true
	}

	for _, open := range stack {
		closer := ')'
		if open.kind == '[' {
			closer = ']'
		}
		log.Warnf("Missing closing %q for %q located at the %s character.",
			closer, open.kind, utils.Ordinal(open.index))
	}
	return false
}
