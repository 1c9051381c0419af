package symcorrect

// entryKind discriminates the tagged Single|Multi variant described in
// Design Notes §9, replacing the sign-trick the original source used to
// overload one integer slot for both "single delete pointer" and "index
// into a parallel record table."
type entryKind uint8

const (
	kindSingle entryKind = iota
	kindMulti
)

// multiRecord is the Multi variant of §3: count is the key's own observed
// frequency (0 when the key is only a delete of other terms, or when the
// key hasn't yet crossed countThreshold), and suggestions is the
// insertion-ordered list of term ids whose delete closure reaches this key
// — including the key's own id, once minted, per the self-reference
// invariant.
type multiRecord struct {
	count       int64
	suggestions []TermID
}

// entry is one (language, key) slot in the dictionary index: either a bare
// pointer to the single term it is a pure delete of, or a Multi record once
// a second piece of information needs to attach to the same key.
type entry struct {
	kind   entryKind
	single TermID
	multi  *multiRecord
}

func singleEntry(t TermID) entry {
	return entry{kind: kindSingle, single: t}
}

func multiEntry(rec *multiRecord) entry {
	return entry{kind: kindMulti, multi: rec}
}

// asMulti resolves any entry to a Multi-shaped view: per §4.5, "single
// deletes are seen as a one-element suggestion list with no own count."
func (e entry) asMulti() multiRecord {
	if e.kind == kindMulti {
		return *e.multi
	}
	return multiRecord{count: 0, suggestions: []TermID{e.single}}
}
