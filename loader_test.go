package symcorrect

import (
	"strings"
	"testing"
)

func newLoaderTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	opts := DefaultOptions()
	opts.EnableCompoundCheck = false
	d, err := NewDictionary(opts)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	return d
}

func TestLoadFrequencyDictionarySkipsMalformedLines(t *testing.T) {
	d := newLoaderTestDictionary(t)

	input := strings.Join([]string{
		"hello 100",
		"onlyoneword",
		"world notanumber",
		"  ",
		"foo 7 extra",
	}, "\n")

	if err := d.LoadFrequencyDictionary(strings.NewReader(input), "en", 0, 1); err != nil {
		t.Fatalf("LoadFrequencyDictionary: %v", err)
	}

	if d.WordCount("en") != 2 {
		t.Fatalf("WordCount = %d, want 2 (hello, foo)", d.WordCount("en"))
	}
	if _, err := d.Lookup("en", "hello", 0); err != nil {
		t.Fatalf("Lookup(hello): %v", err)
	}
}

func TestLoadFrequencyDictionaryRespectsColumnSelection(t *testing.T) {
	d := newLoaderTestDictionary(t)

	// count column first, term column second.
	input := "42 banana\n"
	if err := d.LoadFrequencyDictionary(strings.NewReader(input), "en", 1, 0); err != nil {
		t.Fatalf("LoadFrequencyDictionary: %v", err)
	}

	suggestions, err := d.Lookup("en", "banana", 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(suggestions) == 0 || suggestions[0].Count != 42 {
		t.Errorf("Lookup(banana) = %v, want count 42", suggestions)
	}
}

func TestLoadFrequencyFileMissingIsNotFatal(t *testing.T) {
	d := newLoaderTestDictionary(t)

	if err := d.LoadFrequencyFile("/nonexistent/path/does/not/exist.txt", "en", 0, 1, nil); err != nil {
		t.Errorf("LoadFrequencyFile on missing file = %v, want nil", err)
	}
	if d.WordCount("en") != 0 {
		t.Errorf("WordCount = %d, want 0 after a missing-file load", d.WordCount("en"))
	}
}

func TestLoadCorpusFiltersSingleLetterWordsExceptAAndI(t *testing.T) {
	d := newLoaderTestDictionary(t)
	// The default noise filter hides a length-1 term with count 3 from
	// Lookup; lower it so Lookup can report the count the loader stored.
	d.opts.NoiseMinCount = 0

	corpus := "a b c i a a\n"
	if err := d.LoadCorpus(strings.NewReader(corpus), "en"); err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if _, ok := d.BigramCount("en", "b"); ok {
		t.Errorf("BigramCount unexpectedly populated by LoadCorpus")
	}

	suggestionsA, err := d.Lookup("en", "a", 0)
	if err != nil {
		t.Fatalf("Lookup(a): %v", err)
	}
	if len(suggestionsA) == 0 || suggestionsA[0].Count != 3 {
		t.Errorf("Lookup(a) = %v, want count 3", suggestionsA)
	}

	if _, err := d.Lookup("en", "b", 0); err != nil {
		t.Fatalf("Lookup(b): %v", err)
	}
	if d.WordCount("en") != 2 {
		t.Errorf("WordCount = %d, want 2 (\"a\" and \"i\"; \"b\" and \"c\" are filtered)", d.WordCount("en"))
	}
}

func TestLoadBigramDictionaryParsesTwoAndThreeFieldLines(t *testing.T) {
	d := newLoaderTestDictionary(t)

	input := strings.Join([]string{
		"onephrase 15",
		"two words 30",
	}, "\n")

	if err := d.LoadBigramDictionary(strings.NewReader(input), "en"); err != nil {
		t.Fatalf("LoadBigramDictionary: %v", err)
	}

	if count, ok := d.BigramCount("en", "onephrase"); !ok || count != 15 {
		t.Errorf("BigramCount(onephrase) = (%d, %v), want (15, true)", count, ok)
	}
	if count, ok := d.BigramCount("en", "two words"); !ok || count != 30 {
		t.Errorf("BigramCount(\"two words\") = (%d, %v), want (30, true)", count, ok)
	}

	// The hook is populated but LookupCompound never consults it.
	if _, err := d.LookupCompound("en", "two words", d.Options().EditDistanceMax); err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
}

func TestLoadBigramFileMissingIsNotFatal(t *testing.T) {
	d := newLoaderTestDictionary(t)

	if err := d.LoadBigramFile("/nonexistent/bigrams.txt", "en", nil); err != nil {
		t.Errorf("LoadBigramFile on missing file = %v, want nil", err)
	}
}
