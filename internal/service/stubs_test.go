package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/educonnect/faceauth/internal/embedder"
	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
	"github.com/educonnect/faceauth/internal/store"
)

// stubStore enforces email uniqueness under a mutex the way the database's
// unique index does.
type stubStore struct {
	mu          sync.Mutex
	identities  map[string]*store.Identity
	attempts    []*store.VerificationAttempt
	createCalls int
	findCalls   int
	createErr   error
	findErr     error
	attemptErr  error
}

func newStubStore() *stubStore {
	return &stubStore{identities: map[string]*store.Identity{}}
}

func (s *stubStore) CreateIdentity(ctx context.Context, identity *store.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.identities[identity.Email]; exists {
		return store.ErrDuplicateEmail
	}
	s.identities[identity.Email] = identity
	return nil
}

func (s *stubStore) FindByEmail(ctx context.Context, email string) (*store.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	identity, ok := s.identities[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return identity, nil
}

func (s *stubStore) SaveAttempt(ctx context.Context, attempt *store.VerificationAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attemptErr != nil {
		return s.attemptErr
	}
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *stubStore) AggregateAttempts(ctx context.Context) (*store.AttemptAggregation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg := &store.AttemptAggregation{TotalCount: int64(len(s.attempts))}
	var sum float64
	for _, a := range s.attempts {
		if a.Accepted {
			agg.AcceptedCount++
		}
		sum += a.Distance
	}
	if agg.TotalCount > 0 {
		agg.AverageDistance = sum / float64(agg.TotalCount)
	}
	return agg, nil
}

func (s *stubStore) identityCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.identities)
}

// stubCache is an in-memory Cache; a nil values map means every Get misses.
type stubCache struct {
	mu      sync.Mutex
	values  map[string]string
	setErr  error
	getErr  error
	dels    []string
	sets    []string
	gets    []string
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = append(c.sets, key)
	if c.setErr != nil {
		return c.setErr
	}
	if c.values == nil {
		c.values = map[string]string{}
	}
	if s, ok := value.(string); ok {
		c.values[key] = s
	}
	return nil
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets = append(c.gets, key)
	if c.getErr != nil {
		return "", c.getErr
	}
	if value, ok := c.values[key]; ok {
		return value, nil
	}
	return "", redis.Nil
}

func (c *stubCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels = append(c.dels, key)
	delete(c.values, key)
	return nil
}

// stubEmbedder returns canned detections and counts calls.
type stubEmbedder struct {
	mu         sync.Mutex
	detections []embedder.Detection
	err        error
	calls      int
}

func (e *stubEmbedder) DetectAndEmbed(ctx context.Context, img *imagecodec.Image) ([]embedder.Detection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.detections, nil
}

func (e *stubEmbedder) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// stubGate simulates the model readiness gate.
type stubGate struct {
	err error
}

func (g *stubGate) WaitReady(ctx context.Context) error {
	return g.err
}

// testDescriptor builds a full-dimension descriptor whose first component is
// offset so distances are easy to reason about.
func testDescriptor(offset float32) face.Descriptor {
	d := make(face.Descriptor, face.Dimension)
	for i := range d {
		d[i] = 0.1
	}
	d[0] += offset
	return d
}

func singleDetection(d face.Descriptor) []embedder.Detection {
	return []embedder.Detection{{Descriptor: d, Confidence: 0.95, Box: embedder.Box{Width: 80, Height: 80}}}
}

// testImagePayload returns a small valid base64 PNG capture.
func testImagePayload(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(32 * x), G: uint8(32 * y), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
