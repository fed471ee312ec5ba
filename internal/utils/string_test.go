package utils

import "testing"

func TestStripChars(t *testing.T) {
	testCases := []struct {
		input string
		chars string
		want  string
	}{
		{"(a|b)", "()[]", "a|b"},
		{"[a|b]", "()[]", "a|b"},
		{"no delimiters", "()[]", "no delimiters"},
		{"", "()[]", ""},
		{"(keep)", "", "(keep)"},
		{"((a))[b]", "()[]", "ab"},
	}

	for _, tc := range testCases {
		if got := StripChars(tc.input, tc.chars); got != tc.want {
			t.Errorf("StripChars(%q, %q) = %q, want %q", tc.input, tc.chars, got, tc.want)
		}
	}
}

func TestCollapseDoubleSpaces(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"foo  baz", "foo baz"},
		{"foo baz", "foo baz"},
		{"a  b  c", "a b c"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := CollapseDoubleSpaces(tc.input); got != tc.want {
			t.Errorf("CollapseDoubleSpaces(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{0, "0th"},
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{103, "103rd"},
		{111, "111th"},
	}

	for _, tc := range testCases {
		if got := Ordinal(tc.n); got != tc.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.n); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
