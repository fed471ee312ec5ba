package utils

import (
	"strconv"
	"strings"
)

// StripChars returns s with every rune that occurs in chars removed.
func StripChars(s string, chars string) string {
	if s == "" || chars == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CollapseDoubleSpaces replaces every double space left behind by a removed
// span with a single space.
func CollapseDoubleSpaces(s string) string {
	return strings.ReplaceAll(s, "  ", " ")
}

// OrdinalSuffix returns the English ordinal suffix for n ("st", "nd", "rd",
// "th"). The teens are always "th": 11th, 12th, 13th.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Ordinal formats n with its ordinal suffix, e.g. Ordinal(3) == "3rd".
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}

// FormatWithCommas renders n with thousands separators for log output.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
