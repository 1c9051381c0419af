// Package tokenizer implements §4.1: lowercasing input and extracting
// maximal word-like runs in input order. The same tokenizer governs corpus
// words and query tokens, so that identical parsing is applied everywhere a
// string needs to be split into terms.
//
// The word-character class (alphanumeric plus straight and typographic
// apostrophes, excluding underscore) is deliberately injectable: spec.md
// names "localization of parsing regex classes" as an external collaborator
// the core does not own, so a caller targeting a language whose word
// boundaries need a different class can supply its own pattern via
// NewWithPattern.
package tokenizer

import (
	"regexp"
	"strings"
)

// defaultWordPattern matches runs of Unicode letters, Unicode digits, and
// the straight (') or typographic (’) apostrophe. \p{L}/\p{N} already
// exclude '_', so no separate exclusion is needed.
var defaultWordPattern = regexp.MustCompile(`[\p{L}\p{N}'’]+`)

// Tokenizer lowercases and splits text into word-like runs.
type Tokenizer struct {
	pattern *regexp.Regexp
}

// New returns a Tokenizer using the default word-character class.
func New() *Tokenizer {
	return &Tokenizer{pattern: defaultWordPattern}
}

// NewWithPattern returns a Tokenizer that extracts runs matching pattern
// instead of the default word-character class, for callers localizing
// tokenization to a language the default class doesn't fit.
func NewWithPattern(pattern *regexp.Regexp) *Tokenizer {
	return &Tokenizer{pattern: pattern}
}

// Tokenize lowercases text and returns its word-like runs in input order.
// Never returns nil: empty input yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string) []string {
	matches := t.pattern.FindAllString(strings.ToLower(text), -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// TokenizeCorpus tokenizes text for free-text corpus ingestion: any
// single-character token not present in whitelist is dropped before the
// caller ever sees it, per §4.1's corpus-ingestion filter. Pass nil or an
// empty whitelist to keep no single-character tokens at all.
func (t *Tokenizer) TokenizeCorpus(text string, whitelist map[string]bool) []string {
	tokens := t.Tokenize(text)
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len([]rune(tok)) == 1 && !whitelist[tok] {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}
