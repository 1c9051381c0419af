package symcorrect

import "strings"

func runeLen(s string) int {
	return len([]rune(s))
}

func containsTermID(ids []TermID, t TermID) bool {
	for _, id := range ids {
		if id == t {
			return true
		}
	}
	return false
}

func appendUniqueTermID(ids []TermID, t TermID) []TermID {
	if containsTermID(ids, t) {
		return ids
	}
	return append(ids, t)
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// englishSingleLetterWords is the default §4.1 corpus-ingestion whitelist:
// the two single-letter words English actually has.
var englishSingleLetterWords = map[string]bool{"a": true, "i": true}

func joinTerms(parts Suggestions) string {
	terms := make([]string, len(parts))
	for i, p := range parts {
		terms[i] = p.Term
	}
	return strings.Join(terms, " ")
}

func minCount(parts Suggestions) int64 {
	if len(parts) == 0 {
		return 0
	}
	m := parts[0].Count
	for _, p := range parts[1:] {
		if p.Count < m {
			m = p.Count
		}
	}
	return m
}
