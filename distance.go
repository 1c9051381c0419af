package symcorrect

import "github.com/hbollon/go-edlib"

// Damerau computes the true Damerau-Levenshtein (OSA variant) distance
// between a and b on their Unicode code points, per §4.3: insertion,
// deletion, substitution, and adjacent-transposition edits all cost one, so
// "bank" vs "bnak" is distance 1, not 2.
//
// Common prefixes and suffixes are stripped first, per the §4.3
// optimization contract: the optimal alignment always passes through
// matched borders unchanged, so stripping them is a pure constant-factor
// speedup that never changes the result.
func Damerau(a, b string) int {
	a, b = stripCommonAffixes(a, b)
	if a == b {
		return 0
	}
	return edlib.OSADamerauLevenshteinDistance(a, b)
}

// stripCommonAffixes removes the longest common prefix and, from what's
// left, the longest common suffix, operating on Unicode code points.
func stripCommonAffixes(a, b string) (string, string) {
	ar, br := []rune(a), []rune(b)

	i := 0
	for i < len(ar) && i < len(br) && ar[i] == br[i] {
		i++
	}
	ar, br = ar[i:], br[i:]

	j := 0
	for j < len(ar) && j < len(br) && ar[len(ar)-1-j] == br[len(br)-1-j] {
		j++
	}
	ar, br = ar[:len(ar)-j], br[:len(br)-j]

	return string(ar), string(br)
}

// crossDistance implements the §4.5 step-3 shortcut used while scanning a
// dictionary entry's cross suggestions: when w and the BFS candidate c have
// equal length, or input and c have equal length, only one side had edits
// and the true distance is a simple length difference. Otherwise fall back
// to Damerau on the (affix-stripped) full strings. The shortcut never
// produces a smaller distance than the real one.
func crossDistance(w, input, c string) int {
	wLen, inputLen, cLen := runeLen(w), runeLen(input), runeLen(c)
	switch {
	case wLen == cLen:
		return inputLen - cLen
	case inputLen == cLen:
		return wLen - cLen
	default:
		return Damerau(w, input)
	}
}
