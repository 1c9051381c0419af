// Package symcorrect implements a compound-aware automatic spelling
// corrector: a symmetric-delete index for sublinear within-edit-distance
// candidate retrieval (Dictionary, Lookup), and a compound segmentation
// engine that combines or splits input tokens (LookupCompound).
//
// The package is read-only once a Dictionary's corpus has been loaded:
// CreateDictionaryEntry and the loaders in loader.go are the only methods
// that mutate a Dictionary. Lookup and LookupCompound take no locks and
// never mutate shared state, so a frozen Dictionary may be queried from
// multiple goroutines at once, even though nothing here builds an index
// concurrently.
package symcorrect
