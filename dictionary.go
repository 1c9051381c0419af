package symcorrect

import (
	"github.com/hollowstone/symcorrect/tokenizer"
	"github.com/hollowstone/symcorrect/verbosity"
)

// Options configures a Dictionary's indexing and lookup behavior, per the
// §6 configuration table.
type Options struct {
	// EditDistanceMax (k) ceilings both delete-generation depth during
	// indexing and accepted suggestion distance during lookup.
	EditDistanceMax int `yaml:"editDistanceMax"`
	// Verbose controls how many suggestions Lookup returns. When
	// EnableCompoundCheck is set, Verbose must be verbosity.Top.
	Verbose verbosity.Verbosity `yaml:"verbose"`
	// EnableCompoundCheck routes queries through LookupCompound (§4.6)
	// instead of a bare Lookup (§4.5).
	EnableCompoundCheck bool `yaml:"enableCompoundCheck"`
	// CountThreshold is the minimum observed count before a term is
	// indexed and given deletes.
	CountThreshold int64 `yaml:"countThreshold"`

	// NoiseMinCount and NoiseMinShortLength parameterize the §4.5 "noise
	// filter" (count > NoiseMinCount OR length > NoiseMinShortLength AND
	// count > 0). Design Notes §9 calls these magic thresholds out as
	// worth making configurable while keeping their defaults.
	NoiseMinCount       int64 `yaml:"noiseMinCount"`
	NoiseMinShortLength int   `yaml:"noiseMinShortLength"`
}

// DefaultOptions returns the §6 defaults.
func DefaultOptions() Options {
	return Options{
		EditDistanceMax:     2,
		Verbose:             verbosity.Top,
		EnableCompoundCheck: true,
		CountThreshold:      1,
		NoiseMinCount:       100,
		NoiseMinShortLength: 2,
	}
}

// Validate rejects configurations the core contract forbids, per §6's
// "when enableCompoundCheck is true, verbose must be 0."
func (o Options) Validate() error {
	if o.EditDistanceMax < 0 {
		return ErrNegativeEditDistance
	}
	if o.CountThreshold < 1 {
		return ErrNonPositiveCountThreshold
	}
	if o.EnableCompoundCheck && o.Verbose != verbosity.Top {
		return ErrCompoundRequiresVerboseZero
	}
	return nil
}

// Dictionary is the in-memory symmetric-delete index of §3/§4.4, partitioned
// by language. It is mutated only along the ingestion path
// (CreateDictionaryEntry and the loaders in loader.go); Lookup and
// LookupCompound take no locks and never mutate it, so a frozen Dictionary
// may be read concurrently even though nothing here builds one
// concurrently.
type Dictionary struct {
	opts Options

	// entries holds every (language, key) -> entry pair: both vocabulary
	// terms and the delete pointers their closures install.
	entries map[string]map[string]entry
	// words is the per-language wordlist arena (§3's "wordlist").
	words map[string]*wordlist
	// maxlen is the per-language §3 "maxlength" invariant.
	maxlen map[string]int
	// bigrams holds loaded bigram counts per language. Declared and
	// populated by LoadBigramDictionary, never consulted by
	// LookupCompound — see SPEC_FULL.md §4.
	bigrams map[string]map[string]int64

	tok *tokenizer.Tokenizer
}

// NewDictionary constructs an empty Dictionary. Use DefaultOptions() for
// the §6 defaults, or override individual fields first.
func NewDictionary(opts Options) (*Dictionary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Dictionary{
		opts:    opts,
		entries: make(map[string]map[string]entry),
		words:   make(map[string]*wordlist),
		maxlen:  make(map[string]int),
		bigrams: make(map[string]map[string]int64),
		tok:     tokenizer.New(),
	}, nil
}

// Options returns the Dictionary's configuration.
func (d *Dictionary) Options() Options { return d.opts }

func (d *Dictionary) languageEntries(language string) map[string]entry {
	m, ok := d.entries[language]
	if !ok {
		m = make(map[string]entry)
		d.entries[language] = m
	}
	return m
}

func (d *Dictionary) wordlistFor(language string) *wordlist {
	w, ok := d.words[language]
	if !ok {
		w = &wordlist{}
		d.words[language] = w
	}
	return w
}

func (d *Dictionary) bigramsFor(language string) map[string]int64 {
	m, ok := d.bigrams[language]
	if !ok {
		m = make(map[string]int64)
		d.bigrams[language] = m
	}
	return m
}

func (d *Dictionary) bumpMaxLength(language string, n int) {
	if n > d.maxlen[language] {
		d.maxlen[language] = n
	}
}

// MaxLength returns the length, in code points, of the longest term
// currently indexed for language.
func (d *Dictionary) MaxLength(language string) int { return d.maxlen[language] }

// WordCount returns the number of minted terms for language.
func (d *Dictionary) WordCount(language string) int {
	w, ok := d.words[language]
	if !ok {
		return 0
	}
	return w.len()
}

// EntryCount returns the number of (language, key) entries indexed for
// language, including both vocabulary terms and delete pointers.
func (d *Dictionary) EntryCount(language string) int { return len(d.entries[language]) }

// BigramCount returns the observed count for a two-word phrase, if a bigram
// file covering language has been loaded. See SPEC_FULL.md §4: this is a
// hook for future bigram-aware scoring, not consulted by LookupCompound.
func (d *Dictionary) BigramCount(language, phrase string) (int64, bool) {
	bl, ok := d.bigrams[language]
	if !ok {
		return 0, false
	}
	c, ok := bl[phrase]
	return c, ok
}
