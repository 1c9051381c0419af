package symcorrect

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/hollowstone/symcorrect/verbosity"
)

// Lookup implements the single-term BFS of §4.5: a breadth-first search
// over the deletes of input, intersected with the dictionary index,
// producing a ranked list of suggestions within edit distance k. Returns
// an empty, non-nil Suggestions on any non-error failure mode (input
// outside length bounds, no candidate intersects the index) — per §4.5,
// these are not errors.
func (d *Dictionary) Lookup(language, input string, k int) (Suggestions, error) {
	if k > d.opts.EditDistanceMax {
		return nil, fmt.Errorf("%w: %d > %d", ErrEditDistanceExceedsIndex, k, d.opts.EditDistanceMax)
	}

	// Reads only: a not-yet-indexed language must not gain an entry in
	// d.entries/d.words as a side effect of querying it, per §5's "queries
	// take no locks and must not mutate any shared state." Reading a nil
	// map yields its zero value rather than panicking, so this is safe
	// even when language has never been seen.
	lang := d.entries[language]
	wl := d.words[language]
	maxlen := d.maxlen[language]
	verbose := d.opts.Verbose

	inputLen := runeLen(input)
	if inputLen-k > maxlen {
		return Suggestions{}, nil
	}

	candidates := []string{input}
	candidateSeen := mapset.NewSet[string](input)
	suggestionsSeen := mapset.NewSet[string]()

	var best Suggestions

	for idx := 0; idx < len(candidates); idx++ {
		c := candidates[idx]
		cLen := runeLen(c)
		lengthDiff := inputLen - cLen

		if verbose < verbosity.All && len(best) > 0 && lengthDiff > best[0].Distance {
			break
		}

		if e, prs := lang[c]; prs {
			rec := e.asMulti()

			if !suggestionsSeen.Contains(c) && passesNoiseFilter(rec.count, cLen, d.opts) {
				distance := lengthDiff
				if verbose < verbosity.All && len(best) > 0 && best[0].Distance > distance {
					best = nil
				}
				suggestionsSeen.Add(c)
				best = append(best, &Suggestion{Term: c, Distance: distance, Count: rec.count})
				if verbose < verbosity.All && distance == 0 {
					break
				}
			}

			for _, s := range rec.suggestions {
				w := wl.term(s)
				if suggestionsSeen.Contains(w) {
					continue
				}

				distance := crossDistance(w, input, c)
				if verbose < verbosity.All && len(best) > 0 && distance > best[0].Distance {
					continue
				}
				if distance > k {
					continue
				}

				wCount := d.ownCount(lang, w)
				if !passesNoiseFilter(wCount, runeLen(w), d.opts) {
					continue
				}

				if verbose < verbosity.All && len(best) > 0 && best[0].Distance > distance {
					best = nil
				}
				suggestionsSeen.Add(w)
				best = append(best, &Suggestion{Term: w, Distance: distance, Count: wCount})
			}
		}

		if lengthDiff < k {
			expand := verbose >= verbosity.All
			if !expand {
				expand = len(best) == 0 || lengthDiff < best[0].Distance
			}
			if expand {
				for _, del := range singleDeletes(c) {
					if candidateSeen.Add(del) {
						candidates = append(candidates, del)
					}
				}
			}
		}
	}

	sortSuggestions(best)

	if verbose == verbosity.Top && len(best) > 1 {
		best = best[:1]
	}
	if best == nil {
		best = Suggestions{}
	}
	return best, nil
}

// passesNoiseFilter is the §4.5 short-term/noise filter: a candidate is
// plausible as a real vocabulary term if it's common enough outright, or
// long enough and observed at all.
func passesNoiseFilter(count int64, termLen int, opts Options) bool {
	return count > opts.NoiseMinCount || (termLen > opts.NoiseMinShortLength && count > 0)
}

// ownCount resolves term's own observed count, or 0 if term has no Multi
// record (a bare delete pointer, or not indexed at all).
func (d *Dictionary) ownCount(lang map[string]entry, term string) int64 {
	e, ok := lang[term]
	if !ok || e.kind == kindSingle {
		return 0
	}
	return e.multi.count
}

// sortSuggestions sorts stably by ascending distance then descending
// count, per §4.5's sort contract and §5's ordering guarantee.
func sortSuggestions(s Suggestions) {
	sort.Stable(s)
}
