package aggregator

import "testing"

func TestDedupHash_NormalizesCaseAndWhitespace(t *testing.T) {
	a := DedupHash("Senior  Go Engineer", "ACME Corp", "Berlin, Germany")
	b := DedupHash("senior go engineer", "acme corp", " berlin,   germany ")
	if a != b {
		t.Fatalf("expected identical hashes, got %s vs %s", a, b)
	}
}

func TestDedupHash_DistinctInputs(t *testing.T) {
	a := DedupHash("Go Engineer", "Acme", "Berlin")
	b := DedupHash("Go Engineer", "Acme", "Munich")
	if a == b {
		t.Fatalf("different locations must not collide")
	}

	c := DedupHash("Go Engineer", "Other", "Berlin")
	if a == c {
		t.Fatalf("different companies must not collide")
	}
}

func TestDedupHash_EmptyFields(t *testing.T) {
	a := DedupHash("", "", "")
	b := DedupHash("", "", "")
	if a != b {
		t.Fatalf("empty input must hash deterministically")
	}
	if a == "" {
		t.Fatalf("hash must never be empty")
	}
}
