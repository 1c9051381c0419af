package symcorrect

import "testing"

func buildCompoundTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	opts := DefaultOptions()
	opts.NoiseMinCount = 0
	opts.NoiseMinShortLength = 0
	d, err := NewDictionary(opts)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	for term, count := range map[string]int64{
		"spelling":  300,
		"correctly": 200,
		"whats":     150,
		"up":        400,
	} {
		if _, err := d.CreateDictionaryEntry("en", term, count); err != nil {
			t.Fatalf("CreateDictionaryEntry(%q): %v", term, err)
		}
	}
	return d
}

func TestLookupCompoundEmptyInput(t *testing.T) {
	d := buildCompoundTestDictionary(t)

	got, err := d.LookupCompound("en", "", d.Options().EditDistanceMax)
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got.Term != "" || got.Distance != 0 || got.Count != 0 {
		t.Errorf("LookupCompound(\"\") = %+v, want {\"\", 0, 0}", got)
	}
}

func TestLookupCompoundIdempotentOnCorrectInput(t *testing.T) {
	d := buildCompoundTestDictionary(t)

	input := "spelling correctly"
	got, err := d.LookupCompound("en", input, d.Options().EditDistanceMax)
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got.Term != input {
		t.Errorf("LookupCompound(%q).Term = %q, want %q", input, got.Term, input)
	}
}

func TestLookupCompoundFixesSpuriousSpace(t *testing.T) {
	d := buildCompoundTestDictionary(t)

	got, err := d.LookupCompound("en", "wh ats", d.Options().EditDistanceMax)
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got.Term != "whats" {
		t.Errorf("LookupCompound(\"wh ats\").Term = %q, want %q", got.Term, "whats")
	}
}

func TestLookupCompoundFixesMissingSpace(t *testing.T) {
	d := buildCompoundTestDictionary(t)

	got, err := d.LookupCompound("en", "whatsup", d.Options().EditDistanceMax)
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got.Term != "whats up" {
		t.Errorf("LookupCompound(\"whatsup\").Term = %q, want %q", got.Term, "whats up")
	}
}

func TestLookupCompoundDistanceBoundedByPerTokenCorrections(t *testing.T) {
	d := buildCompoundTestDictionary(t)

	input := "spellng correctl"
	got, err := d.LookupCompound("en", input, d.Options().EditDistanceMax)
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	directDistance := Damerau(input, "spelling correctly")
	// The compound corrector's own reported distance is measured against
	// the raw input it was given, so it should never wildly exceed a
	// direct comparison against the ultimate correction.
	if got.Distance > directDistance+2 {
		t.Errorf("LookupCompound(%q).Distance = %d, suspiciously far from direct distance %d", input, got.Distance, directDistance)
	}
}
