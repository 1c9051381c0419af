package staging

import (
	"sort"
	"testing"
)

func TestStageCountsOccurrencesPerKey(t *testing.T) {
	s := NewStage[string, struct{}](4)

	words := []string{"the", "quick", "the", "fox", "the", "quick"}
	for _, w := range words {
		s.Add(w, struct{}{})
	}

	if got, want := s.Count("the"), 3; got != want {
		t.Errorf("Count(the) = %d, want %d", got, want)
	}
	if got, want := s.Count("quick"), 2; got != want {
		t.Errorf("Count(quick) = %d, want %d", got, want)
	}
	if got, want := s.Count("fox"), 1; got != want {
		t.Errorf("Count(fox) = %d, want %d", got, want)
	}
	if got, want := s.Count("missing"), 0; got != want {
		t.Errorf("Count(missing) = %d, want %d", got, want)
	}

	keys := s.Keys()
	sort.Strings(keys)
	wantKeys := []string{"fox", "quick", "the"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", keys, wantKeys)
	}
	for i := range keys {
		if keys[i] != wantKeys[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], wantKeys[i])
		}
	}

	if got, want := s.NodeCount(), len(words); got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
}

func TestStageValuesReturnsEverythingAdded(t *testing.T) {
	s := NewStage[string, int](2)
	s.Add("k", 1)
	s.Add("k", 2)
	s.Add("k", 3)

	values := s.Values("k")
	if len(values) != 3 {
		t.Fatalf("Values(k) = %v, want 3 entries", values)
	}

	seen := map[int]bool{}
	for _, v := range values {
		seen[v] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !seen[want] {
			t.Errorf("Values(k) missing %d: got %v", want, values)
		}
	}

	if values := s.Values("missing"); values != nil {
		t.Errorf("Values(missing) = %v, want nil", values)
	}
}
