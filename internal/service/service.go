// Package service orchestrates the enrollment and verification flows on top
// of the image codec, the embedding collaborator, and the identity store.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/educonnect/faceauth/internal/embedder"
	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
	"github.com/educonnect/faceauth/internal/logging"
	"github.com/educonnect/faceauth/internal/store"
)

// DefaultRole is assigned when signup omits the role.
const DefaultRole = "user"

// IdentityStore defines the persistence operations the services need.
type IdentityStore interface {
	CreateIdentity(ctx context.Context, identity *store.Identity) error
	FindByEmail(ctx context.Context, email string) (*store.Identity, error)
	SaveAttempt(ctx context.Context, attempt *store.VerificationAttempt) error
	AggregateAttempts(ctx context.Context) (*store.AttemptAggregation, error)
}

// Embedder is the slice of the model contract the services consume.
type Embedder interface {
	DetectAndEmbed(ctx context.Context, img *imagecodec.Image) ([]embedder.Detection, error)
}

// ModelGate blocks requests until the embedding model is warm.
type ModelGate interface {
	WaitReady(ctx context.Context) error
}

// Cache abstracts the Redis operations used by the services to make testing
// easier.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

// cachedIdentity is the shape stored in Redis for descriptor lookups.
type cachedIdentity struct {
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Descriptors []face.Descriptor `json:"descriptors"`
}

func identityCacheKey(email string) string {
	return fmt.Sprintf("identity:%s", email)
}

// retryPolicy reruns cache operations on transient failures with backoff.
type retryPolicy struct {
	attempts       int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		attempts:       3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

func (p retryPolicy) do(ctx context.Context, logger *zap.Logger, operation, requestID string, fn func() error) error {
	if p.attempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := p.initialBackoff
	opLogger := logging.WithOperation(logger, operation, requestID)
	var err error
	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= p.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("cache operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !logging.IsTransient(err) || attempt == p.attempts-1 {
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient cache error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}
