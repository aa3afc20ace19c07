// Package model owns the lifecycle of the face embedding model: it warms the
// model exactly once at process start and gates requests until it is usable.
package model

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/educonnect/faceauth/internal/logging"
)

// ErrNotReady is returned when a request arrives before warm-up completes
// and the bounded wait expires.
var ErrNotReady = errors.New("embedding model is not ready")

// Warmer is the slice of the embedder contract the manager needs.
type Warmer interface {
	Warmup(ctx context.Context) error
}

// Manager performs the one-time warm-up and exposes a readiness gate.
// The zero value is not usable; construct with NewManager.
type Manager struct {
	warmer         Warmer
	logger         *zap.Logger
	attempts       int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	waitTimeout    time.Duration

	ready chan struct{}
}

// Option adjusts manager behaviour.
type Option func(*Manager)

// WithAttempts bounds the number of warm-up tries before giving up.
func WithAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.attempts = n
		}
	}
}

// WithBackoff sets the initial and maximum delay between warm-up tries.
func WithBackoff(initial, max time.Duration) Option {
	return func(m *Manager) {
		if initial > 0 {
			m.initialBackoff = initial
		}
		if max > 0 {
			m.maxBackoff = max
		}
	}
}

// WithWaitTimeout bounds how long WaitReady blocks for warm-up to finish.
func WithWaitTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.waitTimeout = d
		}
	}
}

// NewManager constructs a manager around the given warmer.
func NewManager(warmer Warmer, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		warmer:         warmer,
		logger:         logger.Named("model_manager"),
		attempts:       5,
		initialBackoff: 500 * time.Millisecond,
		maxBackoff:     8 * time.Second,
		waitTimeout:    5 * time.Second,
		ready:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize warms the model, retrying with exponential backoff up to the
// configured attempt count. On success the readiness gate opens; on final
// failure the error is fatal for the process, which must not serve traffic
// without a model. Call exactly once.
func (m *Manager) Initialize(ctx context.Context) error {
	backoff := m.initialBackoff
	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError("model.warmup", "", ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= m.maxBackoff {
				backoff = next
			}
		}

		err = m.warmer.Warmup(ctx)
		if err == nil {
			m.logger.Info("model warm-up complete", zap.Int("attempt", attempt))
			close(m.ready)
			return nil
		}
		m.logger.Warn("model warm-up failed", zap.Error(err), zap.Int("attempt", attempt))
	}
	return logging.NewOperationError("model.warmup", "", err)
}

// Ready reports whether warm-up has completed without blocking.
func (m *Manager) Ready() bool {
	select {
	case <-m.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the model is warm, the configured wait timeout
// expires, or the context is cancelled. It never blocks indefinitely.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	default:
	}

	timer := time.NewTimer(m.waitTimeout)
	defer timer.Stop()

	select {
	case <-m.ready:
		return nil
	case <-timer.C:
		return ErrNotReady
	case <-ctx.Done():
		return ctx.Err()
	}
}
