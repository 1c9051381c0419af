package symcorrect

import "testing"

func TestDamerauAdjacentTransposition(t *testing.T) {
	if got := Damerau("bank", "bnak"); got != 1 {
		t.Errorf("Damerau(bank, bnak) = %d, want 1", got)
	}
}

func TestDamerauIdentical(t *testing.T) {
	if got := Damerau("hello", "hello"); got != 0 {
		t.Errorf("Damerau(hello, hello) = %d, want 0", got)
	}
}

func TestDamerauSimpleSubstitutionsAndEdits(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
	}
	for _, c := range cases {
		if got := Damerau(c.a, c.b); got != c.want {
			t.Errorf("Damerau(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestStripCommonAffixes(t *testing.T) {
	a, b := stripCommonAffixes("prefixMIDDLEsuffix", "prefixOTHERsuffix")
	if a != "MIDDLE" || b != "OTHER" {
		t.Errorf("stripCommonAffixes = (%q, %q), want (MIDDLE, OTHER)", a, b)
	}
}

func TestCrossDistanceShortcutMatchesFullDistance(t *testing.T) {
	cases := []struct {
		w, input, c string
	}{
		{"tests", "test", "test"},  // len(w) != len(c), len(input)==len(c)
		{"test", "tests", "test"},  // len(w)==len(c)
		{"tested", "tester", "te"}, // neither shortcut applies
	}
	for _, tc := range cases {
		got := crossDistance(tc.w, tc.input, tc.c)
		want := Damerau(tc.w, tc.input)
		if got != want {
			t.Errorf("crossDistance(%q,%q,%q) = %d, want %d (full Damerau)", tc.w, tc.input, tc.c, got, want)
		}
	}
}
