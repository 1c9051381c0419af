// Package verbosity defines how many suggestions Lookup returns and how it
// prunes the BFS that finds them.
package verbosity

// Verbosity controls the closeness/quantity of suggestions Lookup returns.
// The numeric values double as the §6 "verbose" configuration option.
type Verbosity int

const (
	// Top returns only the single best suggestion: the smallest edit
	// distance found, ties broken by descending count. Lookup prunes
	// aggressively and can terminate early once a distance-0 match is
	// found. Required when enableCompoundCheck is set.
	Top Verbosity = iota
	// Closest returns every suggestion tied at the smallest edit distance
	// found, ordered by descending count.
	Closest
	// All returns every suggestion within the configured edit distance
	// ceiling, ordered by ascending distance then descending count. No
	// early termination: slower, but exhaustive.
	All
)
