package symcorrect

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hollowstone/symcorrect/staging"
)

// LoadFrequencyFile loads a §6 frequency dictionary file: UTF-8 text, one
// record per line, fields separated by any run of whitespace, term and
// count taken from the 0-based termColumn/countColumn. Lines with fewer
// than two fields, or an unparseable count, are skipped. A missing file is
// logged to logger (which may be nil) and leaves the dictionary unchanged,
// per §7 — it is not an error.
func (d *Dictionary) LoadFrequencyFile(path, language string, termColumn, countColumn int, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Error("missing frequency dictionary", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	defer f.Close()
	return d.LoadFrequencyDictionary(f, language, termColumn, countColumn)
}

// LoadFrequencyDictionary is LoadFrequencyFile without the file-existence
// handling, for callers that already have a reader (tests, embedded
// assets, anything upstream of the os.Open the core deliberately doesn't
// own).
func (d *Dictionary) LoadFrequencyDictionary(r io.Reader, language string, termColumn, countColumn int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if termColumn >= len(fields) || countColumn >= len(fields) {
			continue
		}
		count, err := strconv.ParseInt(fields[countColumn], 10, 64)
		if err != nil {
			continue
		}
		term := strings.ToLower(fields[termColumn])
		if term == "" {
			continue
		}
		if _, err := d.CreateDictionaryEntry(language, term, count); err != nil {
			continue
		}
	}
	return scanner.Err()
}

// LoadCorpusFile loads a free-text corpus (§6): tokenized per §4.1, with
// single-character tokens outside {a, i} dropped before insertion. A
// missing file is logged and leaves the dictionary unchanged.
func (d *Dictionary) LoadCorpusFile(path, language string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Error("missing corpus file", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	defer f.Close()
	return d.LoadCorpus(f, language)
}

// LoadCorpus tokenizes every line of r and accumulates each distinct
// token's occurrence count in a staging.Stage before calling
// CreateDictionaryEntry once per distinct token — functionally identical
// to calling it once per occurrence (count == 0 semantics), just batched,
// mirroring go-symspell's own two-phase stage/commit for bulk loads.
func (d *Dictionary) LoadCorpus(r io.Reader, language string) error {
	counts := staging.NewStage[string, struct{}](4096)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range d.tok.TokenizeCorpus(scanner.Text(), englishSingleLetterWords) {
			counts.Add(tok, struct{}{})
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for _, term := range counts.Keys() {
		if _, err := d.CreateDictionaryEntry(language, term, int64(counts.Count(term))); err != nil {
			return err
		}
	}
	return nil
}

// LoadBigramFile loads a bigram frequency file: two- or three-field lines,
// with the count in the last field and the key the join of every field
// before it. See SPEC_FULL.md §4 — populated but not consulted by
// LookupCompound, per spec.md's Open Question about the source's own
// unused bigrams field.
func (d *Dictionary) LoadBigramFile(path, language string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Error("missing bigram dictionary", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	defer f.Close()
	return d.LoadBigramDictionary(f, language)
}

// LoadBigramDictionary is LoadBigramFile without the file-existence
// handling.
func (d *Dictionary) LoadBigramDictionary(r io.Reader, language string) error {
	bl := d.bigramsFor(language)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key := fields[0]
		if len(fields) == 3 {
			key = fields[0] + " " + fields[1]
		}
		count, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
		if err != nil {
			continue
		}
		bl[strings.ToLower(key)] = count
	}
	return scanner.Err()
}
