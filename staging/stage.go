// Package staging batches repeated key/value associations during bulk
// dictionary ingestion so a caller can commit them in one pass instead of
// touching the permanent index once per occurrence.
//
// This generalizes go-symspell's own delete-staging trick (accumulate
// deletes under a hashed bucket while scanning a free-text corpus, then
// flush once scanning finishes) to an arbitrary comparable key instead of a
// hashed int bucket: the dictionary index here is keyed directly by
// (language, key) strings, so there is no bucket hash to stage against.
package staging

type node[T any] struct {
	value T
	next  int
}

type bucket struct {
	count int
	first int
}

// Stage accumulates values under keys in insertion order, without touching
// a permanent structure until Keys/Values/Count are consulted.
type Stage[K comparable, T any] struct {
	buckets map[K]bucket
	nodes   []node[T]
}

// NewStage creates an empty Stage sized for initialCapacity distinct keys.
func NewStage[K comparable, T any](initialCapacity int) *Stage[K, T] {
	return &Stage[K, T]{
		buckets: make(map[K]bucket, initialCapacity),
		nodes:   make([]node[T], 0, initialCapacity),
	}
}

// KeyCount returns the number of distinct keys staged so far.
func (s *Stage[K, T]) KeyCount() int {
	return len(s.buckets)
}

// NodeCount returns the total number of values staged across all keys.
func (s *Stage[K, T]) NodeCount() int {
	return len(s.nodes)
}

// Add records value under key.
func (s *Stage[K, T]) Add(key K, value T) {
	b, prs := s.buckets[key]
	if !prs {
		b = bucket{first: -1}
	}
	next := b.first
	b.count++
	b.first = len(s.nodes)
	s.buckets[key] = b
	s.nodes = append(s.nodes, node[T]{value: value, next: next})
}

// Count returns how many values have been staged under key.
func (s *Stage[K, T]) Count(key K) int {
	return s.buckets[key].count
}

// Keys returns the staged keys, in unspecified order.
func (s *Stage[K, T]) Keys() []K {
	keys := make([]K, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	return keys
}

// Values returns every value staged under key, most-recently-added first.
func (s *Stage[K, T]) Values(key K) []T {
	b, prs := s.buckets[key]
	if !prs {
		return nil
	}
	values := make([]T, 0, b.count)
	for next := b.first; next >= 0; {
		n := s.nodes[next]
		values = append(values, n.value)
		next = n.next
	}
	return values
}
