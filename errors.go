package symcorrect

import "errors"

// Sentinel errors surfaced by the core, matched with errors.Is. Conditions
// the spec treats as non-errors (no match within k, empty vocabulary, a
// malformed dictionary line) never reach here — they resolve to an empty or
// best-effort suggestion list instead.
var (
	ErrEmptyKey                    = errors.New("symcorrect: empty dictionary key")
	ErrNegativeCount               = errors.New("symcorrect: negative count")
	ErrNegativeEditDistance        = errors.New("symcorrect: editDistanceMax must be >= 0")
	ErrNonPositiveCountThreshold   = errors.New("symcorrect: countThreshold must be >= 1")
	ErrCompoundRequiresVerboseZero = errors.New("symcorrect: enableCompoundCheck requires verbose == Top")
	ErrEditDistanceExceedsIndex    = errors.New("symcorrect: requested edit distance exceeds the index's editDistanceMax")
)
