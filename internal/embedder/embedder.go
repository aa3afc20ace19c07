// Package embedder defines the narrow contract this service requires from
// the face detection/embedding model. The model itself is an external
// collaborator; any implementation that satisfies Client can back it.
package embedder

import (
	"context"

	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
)

// Box is the detected face region within the source image.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Area returns the bounding-box area in pixels.
func (b Box) Area() int {
	return b.Width * b.Height
}

// Detection is one face found in an image.
type Detection struct {
	Descriptor face.Descriptor
	Confidence float32
	Box        Box
}

// Client exposes the model operations used by the enrollment and
// verification flows.
type Client interface {
	// DetectAndEmbed returns every detected face with its descriptor.
	// An empty slice means no face was found; that is not an error here,
	// callers decide how to surface it.
	DetectAndEmbed(ctx context.Context, img *imagecodec.Image) ([]Detection, error)
	// Warmup reports whether the model weights are loaded and usable.
	Warmup(ctx context.Context) error
}

// PrimaryDetection selects the single face to use when the model reports
// more than one: highest confidence first, then largest bounding box, then
// the earliest detection. Returns false when there are no detections.
func PrimaryDetection(detections []Detection) (Detection, bool) {
	if len(detections) == 0 {
		return Detection{}, false
	}
	best := detections[0]
	for _, d := range detections[1:] {
		if d.Confidence > best.Confidence {
			best = d
			continue
		}
		if d.Confidence == best.Confidence && d.Box.Area() > best.Box.Area() {
			best = d
		}
	}
	return best, true
}
