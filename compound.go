package symcorrect

// LookupCompound implements §4.6: compound-aware correction of multi-word
// input. It tokenizes input and builds an output part list left to right,
// deciding at each position among keep-as-correction, merge-with-previous,
// and split-into-two, using Lookup as its single-word primitive and
// Damerau as tiebreaker.
func (d *Dictionary) LookupCompound(language, input string, k int) (*Suggestion, error) {
	tokens := d.tok.Tokenize(input)
	if len(tokens) == 0 {
		return &Suggestion{Term: "", Distance: 0, Count: 0}, nil
	}

	parts := make(Suggestions, 0, len(tokens))
	combinedLastStep := false

	for i, tok := range tokens {
		single, err := d.Lookup(language, tok, k)
		if err != nil {
			return nil, err
		}

		if i >= 1 && !combinedLastStep {
			merged, err := d.tryCombine(language, tokens[i-1], tok, parts[len(parts)-1], single, k)
			if err != nil {
				return nil, err
			}
			if merged != nil {
				parts[len(parts)-1] = merged
				combinedLastStep = true
				continue
			}
		}
		combinedLastStep = false

		if len(single) > 0 && (single[0].Distance == 0 || runeLen(tok) == 1) {
			parts = append(parts, single[0])
			continue
		}

		best, err := d.bestSplit(language, tok, single, k)
		if err != nil {
			return nil, err
		}
		parts = append(parts, best)
	}

	joined := joinTerms(parts)
	count := minCount(parts)
	distance := Damerau(joined, input)
	return &Suggestion{Term: joined, Distance: distance, Count: count}, nil
}

// tryCombine implements §4.6 step 1: it proposes merging the previous and
// current raw tokens into one query, correcting a spurious space, and
// returns the replacement for P[-1] if the merge wins, or nil if the
// current P[-1] should stand.
func (d *Dictionary) tryCombine(language, prevTok, tok string, prevPart *Suggestion, single Suggestions, k int) (*Suggestion, error) {
	combined, err := d.Lookup(language, prevTok+tok, k)
	if err != nil {
		return nil, err
	}
	if len(combined) == 0 {
		return nil, nil
	}

	b2 := &Suggestion{Term: tok, Distance: k + 1, Count: 0}
	if len(single) > 0 {
		b2 = single[0]
	}

	joined := prevTok + " " + tok
	bestJoined := prevPart.Term + " " + b2.Term

	if combined[0].Distance+1 >= Damerau(joined, bestJoined) {
		return nil, nil
	}

	merged := combined[0].ShallowCopy()
	merged.Distance++
	return merged, nil
}

// bestSplit implements §4.6 step 3: it searches every split position of
// tok, skipping positions whose first half has no suggestion at all, and
// abandoning splitting entirely if a half's best suggestion duplicates the
// whole-token correction (already captured by single). Seeded with
// single[0] when present, the proposal minimizing (distance, -count) wins;
// if nothing survives, the original token is preserved.
func (d *Dictionary) bestSplit(language, tok string, single Suggestions, k int) (*Suggestion, error) {
	var singleTerm string
	haveSingle := len(single) > 0
	if haveSingle {
		singleTerm = single[0].Term
	}

	proposals := make(Suggestions, 0, 2)
	if haveSingle {
		proposals = append(proposals, single[0])
	}

	runes := []rune(tok)
	for j := 1; j < len(runes); j++ {
		a, b := string(runes[:j]), string(runes[j:])

		A, err := d.Lookup(language, a, k)
		if err != nil {
			return nil, err
		}
		if len(A) == 0 {
			continue
		}

		B, err := d.Lookup(language, b, k)
		if err != nil {
			return nil, err
		}

		if haveSingle && (A[0].Term == singleTerm || (len(B) > 0 && B[0].Term == singleTerm)) {
			return single[0], nil
		}

		if len(B) == 0 {
			continue
		}

		term := A[0].Term + " " + B[0].Term
		dist := Damerau(tok, term)
		proposals = append(proposals, &Suggestion{Term: term, Distance: dist, Count: minInt64(A[0].Count, B[0].Count)})
		if dist == 1 {
			break
		}
	}

	if len(proposals) == 0 {
		return &Suggestion{Term: tok, Distance: k + 1, Count: 0}, nil
	}

	return chooseBestProposal(proposals), nil
}

func chooseBestProposal(proposals Suggestions) *Suggestion {
	best := proposals[0]
	for _, p := range proposals[1:] {
		if p.Distance < best.Distance || (p.Distance == best.Distance && p.Count > best.Count) {
			best = p
		}
	}
	return best
}
