package embedder

import "testing"

func TestPrimaryDetectionEmpty(t *testing.T) {
	if _, ok := PrimaryDetection(nil); ok {
		t.Fatal("expected no detection for empty input")
	}
}

func TestPrimaryDetectionPrefersConfidence(t *testing.T) {
	detections := []Detection{
		{Confidence: 0.5, Box: Box{Width: 100, Height: 100}},
		{Confidence: 0.9, Box: Box{Width: 10, Height: 10}},
		{Confidence: 0.7, Box: Box{Width: 200, Height: 200}},
	}

	best, ok := PrimaryDetection(detections)
	if !ok {
		t.Fatal("expected a detection")
	}
	if best.Confidence != 0.9 {
		t.Fatalf("expected highest-confidence detection, got confidence %f", best.Confidence)
	}
}

func TestPrimaryDetectionBreaksTiesByArea(t *testing.T) {
	detections := []Detection{
		{Confidence: 0.8, Box: Box{Width: 10, Height: 10}},
		{Confidence: 0.8, Box: Box{Width: 50, Height: 50}},
		{Confidence: 0.8, Box: Box{Width: 20, Height: 20}},
	}

	best, _ := PrimaryDetection(detections)
	if best.Box.Area() != 2500 {
		t.Fatalf("expected largest box to win the tie, got area %d", best.Box.Area())
	}
}

func TestPrimaryDetectionFullTieTakesFirst(t *testing.T) {
	detections := []Detection{
		{Confidence: 0.8, Box: Box{X: 1, Width: 10, Height: 10}},
		{Confidence: 0.8, Box: Box{X: 2, Width: 10, Height: 10}},
	}

	best, _ := PrimaryDetection(detections)
	if best.Box.X != 1 {
		t.Fatalf("expected the earliest detection on a full tie, got X=%d", best.Box.X)
	}
}
