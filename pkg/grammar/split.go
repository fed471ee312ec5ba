package grammar

import (
	"strings"

	"github.com/bnfgen/bnfgen/internal/utils"
)

// delimiters are the span characters stripped before splitting alternatives.
const delimiters = "()[]"

// SplitOptions strips the span of its delimiters and splits the remainder
// into trimmed alternatives. Duplicates are kept; downstream set semantics
// collapse them.
func SplitOptions(span string) []string {
	cleaned := utils.StripChars(span, delimiters)

	parts := strings.Split(cleaned, "|")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
