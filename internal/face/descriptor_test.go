package face

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceIdenticalDescriptorsIsZero(t *testing.T) {
	a := make(Descriptor, Dimension)
	for i := range a {
		a[i] = float32(i) * 0.01
	}

	d, err := Distance(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	a := Descriptor{0, 0, 0}
	b := Descriptor{3, 4, 0}

	d, err := Distance(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %f", d)
	}
}

func TestDistanceDimensionMismatch(t *testing.T) {
	_, err := Distance(Descriptor{1, 2}, Descriptor{1, 2, 3})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %T", err)
	}
	if dimErr.Want != 2 || dimErr.Got != 3 {
		t.Fatalf("unexpected dimensions: %+v", dimErr)
	}
}

func TestBestDistanceTakesMinimum(t *testing.T) {
	probe := Descriptor{0, 0}
	candidates := []Descriptor{
		{3, 4}, // 5
		{0, 1}, // 1
		{6, 8}, // 10
	}

	d, err := BestDistance(probe, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-1) > 1e-9 {
		t.Fatalf("expected best distance 1, got %f", d)
	}

	// A closer candidate can only improve the result.
	d2, err := BestDistance(probe, append(candidates, Descriptor{0, 0.5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d2 > d {
		t.Fatalf("adding a closer candidate increased the result: %f > %f", d2, d)
	}
}

func TestBestDistanceEmptyCandidates(t *testing.T) {
	if _, err := BestDistance(Descriptor{1}, nil); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestDecideInclusiveBoundary(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		accepted bool
	}{
		{"zero distance", 0, true},
		{"below threshold", DefaultMatchThreshold - 0.01, true},
		{"exactly threshold", DefaultMatchThreshold, true},
		{"just above threshold", DefaultMatchThreshold + 1e-9, false},
		{"far above threshold", 0.9, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := Decide(tc.distance, DefaultMatchThreshold)
			if decision.Accepted != tc.accepted {
				t.Fatalf("distance %f: expected accepted=%t, got %t", tc.distance, tc.accepted, decision.Accepted)
			}
			if decision.Distance != tc.distance {
				t.Fatalf("decision did not carry the distance: %f", decision.Distance)
			}
		})
	}
}
