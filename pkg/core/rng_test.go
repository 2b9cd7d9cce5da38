package core

import "testing"

func TestSampleIndicesDistinct(t *testing.T) {
	rng := NewRNG(7)
	got := rng.SampleIndices(20, 8)
	if len(got) != 8 {
		t.Fatalf("sampled %d indices, expected 8", len(got))
	}
	seen := map[int]bool{}
	for _, i := range got {
		if i < 0 || i >= 20 {
			t.Fatalf("index %d out of range [0,20)", i)
		}
		if seen[i] {
			t.Fatalf("index %d sampled twice", i)
		}
		seen[i] = true
	}
}

func TestSampleIndicesExhaustsSmallPopulation(t *testing.T) {
	rng := NewRNG(1)
	got := rng.SampleIndices(3, 10)
	if len(got) != 3 {
		t.Fatalf("sampled %d indices from population 3, expected 3", len(got))
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}
