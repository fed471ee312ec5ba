package grammar

import "strings"

// Substitute replaces the first occurrence of span inside candidate with
// each of the span's alternatives in turn. Results are collected as a set:
// alternatives that produce identical strings collapse.
func Substitute(candidate, span string) map[string]struct{} {
	expansions := make(map[string]struct{})

	for _, option := range SplitOptions(span) {
		expansions[strings.Replace(candidate, span, option, 1)] = struct{}{}
	}
	return expansions
}
