package symcorrect

// TermID is the dense integer handle minted for a vocabulary term the first
// time its observed count reaches countThreshold. Ids are never reused.
type TermID int32

// wordlist is the append-only arena of Design Notes §9: a pure index-to-
// string mapping, cache-friendly and ownership-free. It never shrinks, and
// TermID values are stable indices into it.
type wordlist struct {
	terms []string
}

func (w *wordlist) add(term string) TermID {
	id := TermID(len(w.terms))
	w.terms = append(w.terms, term)
	return id
}

func (w *wordlist) term(id TermID) string {
	return w.terms[id]
}

func (w *wordlist) len() int {
	return len(w.terms)
}
