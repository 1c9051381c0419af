package symcorrect

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// singleDeletes returns every string obtained by deleting exactly one
// Unicode code point from word. Deletes are only generated from strings of
// at least two code points, per §4.2.
func singleDeletes(word string) []string {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}
	out := make([]string, 0, len(runes))
	for i := range runes {
		del := make([]rune, 0, len(runes)-1)
		del = append(del, runes[:i]...)
		del = append(del, runes[i+1:]...)
		out = append(out, string(del))
	}
	return out
}

// Edits implements the edit-1..k delete generator of §4.2: it adds every
// distinct string obtainable by deleting 1..k code points from word into
// acc, recursing on each newly discovered delete of length > 1 until the
// requested depth k has been spent. The accumulator dedupes, which bounds
// the work by the number of distinct deletes rather than the exponential
// number of deletion paths.
func Edits(word string, k int, acc mapset.Set[string]) mapset.Set[string] {
	return editsAtDepth(word, 1, k, acc)
}

func editsAtDepth(word string, depth, k int, acc mapset.Set[string]) mapset.Set[string] {
	if depth > k {
		return acc
	}
	for _, del := range singleDeletes(word) {
		if !acc.Add(del) {
			continue
		}
		if runeLen(del) > 1 && depth < k {
			acc = editsAtDepth(del, depth+1, k, acc)
		}
	}
	return acc
}

// EditsSet returns the full delete closure of word at depth 1..k, per the
// semantic contract of §4.2:
//
//	{ s : exists e in [1..k] . s is obtained from word by deleting exactly e
//	  characters, |s| >= 1, s != word }
func EditsSet(word string, k int) mapset.Set[string] {
	return Edits(word, k, mapset.NewSet[string]())
}
