package symcorrect

import "github.com/hollowstone/symcorrect/utilities"

// CreateDictionaryEntry implements §4.4. count == 0 means "observed one
// more occurrence of term"; count > 0 means "add this count to term's
// stored total." Once (and only once) term's accumulated count transitions
// from below countThreshold to at-or-above it, a term id is minted, term is
// appended to the wordlist, and its 1..k delete closure is installed in the
// index. Reports whether this call minted a new term id.
func (d *Dictionary) CreateDictionaryEntry(language, term string, count int64) (bool, error) {
	if term == "" {
		return false, ErrEmptyKey
	}
	if count < 0 {
		return false, ErrNegativeCount
	}
	delta := count
	if count == 0 {
		delta = 1
	}

	lang := d.languageEntries(language)
	rec := d.resolveMulti(lang, term)

	before := rec.count
	rec.count = utilities.ClampAddInt64(rec.count, delta)

	if before >= d.opts.CountThreshold || rec.count < d.opts.CountThreshold {
		return false, nil
	}

	// before < threshold <= rec.count: crossing now, mint once.
	wl := d.wordlistFor(language)
	t := wl.add(term)
	rec.suggestions = appendUniqueTermID(rec.suggestions, t)
	d.bumpMaxLength(language, runeLen(term))

	for del := range EditsSet(term, d.opts.EditDistanceMax).Iter() {
		d.installDelete(lang, wl, del, term, t)
	}

	return true, nil
}

// resolveMulti returns the Multi record backing key, promoting a Single
// entry to Multi or creating a fresh zero-count Multi if key is absent —
// the structural half of §4.4's three insertion bullets. The count math is
// left to the caller.
func (d *Dictionary) resolveMulti(lang map[string]entry, key string) *multiRecord {
	e, prs := lang[key]
	if !prs {
		rec := &multiRecord{}
		lang[key] = multiEntry(rec)
		return rec
	}
	if e.kind == kindMulti {
		return e.multi
	}
	rec := &multiRecord{count: 0, suggestions: []TermID{e.single}}
	lang[key] = multiEntry(rec)
	return rec
}

// installDelete attaches term's id to the entry at delete key del, per
// §4.4's "for every d in Edits(key,k) insert a delete pointer" bullets. wl
// is the same language's wordlist, needed to resolve surplus lengths of
// suggestions already on a Multi entry.
func (d *Dictionary) installDelete(lang map[string]entry, wl *wordlist, del, term string, t TermID) {
	e, prs := lang[del]
	if !prs {
		lang[del] = singleEntry(t)
		return
	}
	switch e.kind {
	case kindSingle:
		if e.single == t {
			return
		}
		rec := &multiRecord{count: 0, suggestions: []TermID{e.single}}
		lang[del] = multiEntry(rec)
		d.addLowestDistance(wl, rec, term, t, del)
	case kindMulti:
		if containsTermID(e.multi.suggestions, t) {
			return
		}
		d.addLowestDistance(wl, e.multi, term, t, del)
	}
}

// addLowestDistance implements §4.4's verbosity-dependent best-only policy
// for a delete entry's suggestion list. Surplus length (|term| - |del|) is
// a cheap proxy for edit distance between the original term and the
// delete: below verbosity.All, an incoming suggestion with strictly smaller
// surplus than the current minimum clears the list first; strictly larger
// surplus is ignored; ties append. At verbosity.All, every suggestion is
// kept.
func (d *Dictionary) addLowestDistance(wl *wordlist, rec *multiRecord, term string, t TermID, del string) {
	if containsTermID(rec.suggestions, t) {
		return
	}
	if d.opts.Verbose >= 2 {
		rec.suggestions = append(rec.suggestions, t)
		return
	}
	if len(rec.suggestions) == 0 {
		rec.suggestions = append(rec.suggestions, t)
		return
	}

	surplus := runeLen(term) - runeLen(del)
	minSurplus := minSurplusOf(wl, rec.suggestions, del)

	switch {
	case surplus < minSurplus:
		rec.suggestions = []TermID{t}
	case surplus == minSurplus:
		rec.suggestions = append(rec.suggestions, t)
	}
}

func minSurplusOf(wl *wordlist, suggestions []TermID, del string) int {
	delLen := runeLen(del)
	min := 0
	for i, s := range suggestions {
		surplus := runeLen(wl.term(s)) - delLen
		if i == 0 || surplus < min {
			min = surplus
		}
	}
	return min
}
