package symcorrect

import "fmt"

// Suggestion is one candidate correction: the suggested term, its edit
// distance from the query, and its observed dictionary count (carried
// through the compound corrector as the weakest-link signal for
// min(counts), per Design Notes §9).
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}

// ShallowCopy returns a copy of s, so callers mutating a returned
// Suggestion (the compound corrector's combine step increments Distance by
// one to charge the removed space) never mutate a shared cached value.
func (s *Suggestion) ShallowCopy() *Suggestion {
	return &Suggestion{Term: s.Term, Distance: s.Distance, Count: s.Count}
}

func (s *Suggestion) String() string {
	return fmt.Sprintf("{%s, %d, %d}", s.Term, s.Distance, s.Count)
}

// Suggestions is a ranked list of Suggestion, sorted ascending by Distance
// then descending by Count.
type Suggestions []*Suggestion

func (s Suggestions) Len() int      { return len(s) }
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less orders by ascending distance, then descending count — the single
// comparator used for every verbosity level. Design Notes §9 calls out the
// original source's arithmetic compare-key combination
// (2*distance.CompareTo - count.CompareTo) as relying on three-valued
// compare semantics it shouldn't; a lexicographic comparator is equivalent
// and unambiguous.
func (s Suggestions) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}
