// Package store persists identities and their enrolled descriptors in
// Postgres. Uniqueness of the identity key is enforced by the database, not
// by application-level check-then-insert.
package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/logging"
)

// ErrDuplicateEmail is returned when a create collides with an existing
// identity. Under concurrent creates for the same email, exactly one caller
// succeeds; the rest receive this.
var ErrDuplicateEmail = errors.New("identity already exists")

// ErrNotFound is returned when no identity matches the requested email.
var ErrNotFound = errors.New("identity not found")

// AttemptAggregation holds raw verification-attempt aggregates.
type AttemptAggregation struct {
	TotalCount      int64   `gorm:"column:total_count"`
	AcceptedCount   int64   `gorm:"column:accepted_count"`
	AverageDistance float64 `gorm:"column:average_distance"`
}

// IdentityStore provides persistence APIs for identities and attempt audits.
type IdentityStore struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewIdentityStore creates a new store instance.
func NewIdentityStore(db *gorm.DB, logger *zap.Logger) *IdentityStore {
	return &IdentityStore{
		db:             db,
		logger:         logger.Named("identity_store"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (s *IdentityStore) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Identity{}, &VerificationAttempt{})
}

// CreateIdentity inserts a new identity atomically. The unique index on
// email is the authority on duplicates. Not retried: a retry after an
// ambiguous failure could mask its own first success as a duplicate.
func (s *IdentityStore) CreateIdentity(ctx context.Context, identity *Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(identity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return logging.NewOperationError("store.create_identity", "", err)
	}
	return nil
}

// FindByEmail retrieves an identity by its key.
func (s *IdentityStore) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	var identity Identity
	err := s.executeWithRetry(ctx, "store.find_by_email", "", func() error {
		return s.db.WithContext(ctx).First(&identity, "email = ?", email).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &identity, nil
}

// AppendDescriptor adds a descriptor to an existing identity. Runs in a
// transaction with a row lock so concurrent appends cannot lose samples.
func (s *IdentityStore) AppendDescriptor(ctx context.Context, email string, d face.Descriptor) error {
	if len(d) != face.Dimension {
		return &face.DimensionError{Want: face.Dimension, Got: len(d)}
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var identity Identity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&identity, "email = ?", email).Error; err != nil {
			return err
		}
		identity.Descriptors = append(identity.Descriptors, d)
		return tx.Model(&identity).Update("descriptors", identity.Descriptors).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return logging.NewOperationError("store.append_descriptor", "", err)
	}
	return nil
}

// SaveAttempt persists a verification audit record.
func (s *IdentityStore) SaveAttempt(ctx context.Context, attempt *VerificationAttempt) error {
	return s.executeWithRetry(ctx, "store.save_attempt", attempt.RequestID, func() error {
		return s.db.WithContext(ctx).Create(attempt).Error
	})
}

// AggregateAttempts computes summary statistics over the attempt audit log.
func (s *IdentityStore) AggregateAttempts(ctx context.Context) (*AttemptAggregation, error) {
	var agg AttemptAggregation
	err := s.executeWithRetry(ctx, "store.aggregate_attempts", "", func() error {
		return s.db.WithContext(ctx).
			Model(&VerificationAttempt{}).
			Select("COUNT(*) AS total_count, " +
				"COALESCE(SUM(CASE WHEN accepted THEN 1 ELSE 0 END), 0) AS accepted_count, " +
				"COALESCE(AVG(distance), 0) AS average_distance").
			Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// executeWithRetry reruns fn on transient failures with exponential backoff.
func (s *IdentityStore) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if s.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := s.initialBackoff
	opLogger := logging.WithOperation(s.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= s.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("store operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if !logging.IsTransient(err) || attempt == s.retryAttempts-1 {
			opLogger.Error("store operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient store error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}
