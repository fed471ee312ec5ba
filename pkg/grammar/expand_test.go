package grammar

import (
	"errors"
	"reflect"
	"testing"
)

func expectExpansion(t *testing.T, rules []string, lang string, want []string) {
	t.Helper()
	got, err := Expand(rules, lang)
	if err != nil {
		t.Fatalf("Expand(%v, %q): %v", rules, lang, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(%v, %q) = %v, want %v", rules, lang, got, want)
	}
}

func TestExpandSimpleGroup(t *testing.T) {
	expectExpansion(t, []string{"(a|b|c)"}, "en", []string{"a", "b", "c"})
}

func TestExpandGroupAndOptional(t *testing.T) {
	expectExpansion(t, []string{"(hi|hello) [there]"}, "en",
		[]string{"hello", "hello there", "hi", "hi there"})
}

func TestExpandCombinatorics(t *testing.T) {
	// 2 mandatory alternatives times (2 optionals + absent) = 6 sentences.
	got, err := Expand([]string{"(a|b) [c|d]"}, "en")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "a c", "a d", "b", "b c", "b d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand combinatorics = %v, want %v", got, want)
	}
}

func TestExpandTopLevelAlternation(t *testing.T) {
	expectExpansion(t, []string{"a|b"}, "en", []string{"a", "b"})
}

func TestExpandNestedGroups(t *testing.T) {
	expectExpansion(t, []string{"((a|b) c)"}, "en", []string{"a c", "b c"})
	expectExpansion(t, []string{"(x|(y|z) w)"}, "en", []string{"x", "y w", "z w"})
}

func TestExpandIdempotentOnWordOnlyInput(t *testing.T) {
	expectExpansion(t, []string{"hi there", "hello"}, "en", []string{"hello", "hi there"})
}

func TestExpandWhitespaceCollapse(t *testing.T) {
	got, err := Expand([]string{"foo [bar] baz"}, "en")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo bar baz", "foo baz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v (absent-optional variant must carry a single space)", got, want)
	}
}

func TestExpandOptionalOnlyRule(t *testing.T) {
	// The absent branch of "[a]" is the empty sentence, which is dropped.
	expectExpansion(t, []string{"[a]"}, "en", []string{"a"})
}

func TestExpandPlaceholdersPassThrough(t *testing.T) {
	expectExpansion(t, []string{"(take me|go) to <city>"}, "en",
		[]string{"go to <city>", "take me to <city>"})
}

func TestExpandJointWorkingSet(t *testing.T) {
	// Multiple input rules share one working set, so identical candidates
	// from distinct rules collapse.
	expectExpansion(t, []string{"(a|b)", "a|c"}, "en", []string{"a", "b", "c"})
}

func TestExpandMalformedRule(t *testing.T) {
	got, err := Expand([]string{"(a|b]"}, "en")
	if !errors.Is(err, ErrMalformedGrammar) {
		t.Fatalf("Expand of malformed rule: err = %v, want ErrMalformedGrammar", err)
	}
	if len(got) != 0 {
		t.Errorf("Expand of malformed rule returned partial output: %v", got)
	}
}

func TestExpandMalformedRulePoisonsBatch(t *testing.T) {
	// One malformed rule discards the expansions of its well-formed siblings.
	got, err := Expand([]string{"(a|b)", "(c|d]"}, "en")
	if !errors.Is(err, ErrMalformedGrammar) {
		t.Fatalf("err = %v, want ErrMalformedGrammar", err)
	}
	if len(got) != 0 {
		t.Errorf("well-formed sibling leaked into output: %v", got)
	}
}

func TestExpandUnsupportedLanguage(t *testing.T) {
	got, err := Expand([]string{"a|b"}, "xx")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("err = %v, want ErrUnsupportedLanguage", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestExpandEmptyInput(t *testing.T) {
	for _, rules := range [][]string{nil, {}, {"", "   "}} {
		_, err := Expand(rules, "en")
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Expand(%v): err = %v, want ErrEmptyInput", rules, err)
		}
	}
}

func TestExpandRoundLimit(t *testing.T) {
	// "$" is outside the alphabet class but not a bracket, so the candidate
	// can never become word-only and no phase can touch it.
	expander := NewExpander(Options{MaxRounds: 3})
	got, err := expander.Expand([]string{"a$b"}, "en")
	if !errors.Is(err, ErrRoundLimit) {
		t.Fatalf("err = %v, want ErrRoundLimit", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestExpandAccentedLanguage(t *testing.T) {
	expectExpansion(t, []string{"(bonjour|salut) [à tous]"}, "fr",
		[]string{"bonjour", "bonjour à tous", "salut", "salut à tous"})
}

func TestExpandDeepRule(t *testing.T) {
	got, err := Expand(
		[]string{"(directions to|(take|drive) me (to|towards)) [an] address in <city>"}, "en")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"directions to address in <city>",
		"directions to an address in <city>",
		"drive me to address in <city>",
		"drive me to an address in <city>",
		"drive me towards address in <city>",
		"drive me towards an address in <city>",
		"take me to address in <city>",
		"take me to an address in <city>",
		"take me towards address in <city>",
		"take me towards an address in <city>",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("deep rule expansion mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestExpandOutputSortedAndDeduplicated(t *testing.T) {
	got, err := Expand([]string{"(b|a|b)"}, "en")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want deduplicated sorted [a b]", got)
	}
}
