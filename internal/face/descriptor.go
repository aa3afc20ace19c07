// Package face holds the descriptor comparison logic used to decide whether
// two captures belong to the same person.
package face

import (
	"fmt"
	"math"
)

// Dimension is the descriptor length produced by the embedding model.
const Dimension = 128

// DefaultMatchThreshold is the maximum Euclidean distance between two
// descriptors of the same person. Matches the tolerance used by the
// recognition model this service fronts.
const DefaultMatchThreshold = 0.4

// Descriptor is a fixed-length face embedding.
type Descriptor []float32

// Decision is the outcome of comparing a probe against enrolled descriptors.
type Decision struct {
	Distance float64
	Accepted bool
}

// DimensionError reports descriptors of unequal length. It indicates a
// programming or configuration fault, never bad user input.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("descriptor dimension mismatch: want %d, got %d", e.Want, e.Got)
}

// Distance returns the Euclidean distance between two descriptors.
func Distance(a, b Descriptor) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{Want: len(a), Got: len(b)}
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// BestDistance returns the minimum distance from the probe to any of the
// candidate descriptors. Candidates must be non-empty; an identity always
// carries at least one enrolled descriptor.
func BestDistance(probe Descriptor, candidates []Descriptor) (float64, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no candidate descriptors")
	}
	best := math.Inf(1)
	for _, c := range candidates {
		d, err := Distance(probe, c)
		if err != nil {
			return 0, err
		}
		if d < best {
			best = d
		}
	}
	return best, nil
}

// Decide applies the threshold policy. The boundary is inclusive: a distance
// exactly equal to the threshold is accepted.
func Decide(distance, threshold float64) Decision {
	return Decision{Distance: distance, Accepted: distance <= threshold}
}
