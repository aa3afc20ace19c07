package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/educonnect/faceauth/internal/embedder"
	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
	"github.com/educonnect/faceauth/internal/logging"
	"github.com/educonnect/faceauth/internal/store"
)

const identityCacheTTL = 5 * time.Minute

// LoginResult is returned when the biometric check accepts the capture.
type LoginResult struct {
	Email    string
	Role     string
	Decision face.Decision
}

// VerificationService decides whether a fresh capture belongs to the claimed
// identity.
type VerificationService struct {
	store         IdentityStore
	cache         Cache
	embedder      Embedder
	gate          ModelGate
	logger        *zap.Logger
	threshold     float64
	maxImageBytes int
	retry         retryPolicy
}

// NewVerificationService constructs the login flow.
func NewVerificationService(st IdentityStore, cache Cache, emb Embedder, gate ModelGate, logger *zap.Logger, threshold float64, maxImageBytes int) *VerificationService {
	if threshold <= 0 {
		threshold = face.DefaultMatchThreshold
	}
	return &VerificationService{
		store:         st,
		cache:         cache,
		embedder:      emb,
		gate:          gate,
		logger:        logger.Named("verification_service"),
		threshold:     threshold,
		maxImageBytes: maxImageBytes,
		retry:         defaultRetryPolicy(),
	}
}

// Verify runs the 1:1 check: the probe descriptor is compared against every
// descriptor enrolled for the claimed identity and the best distance is put
// to the threshold. The identity lookup happens before any model compute.
func (s *VerificationService) Verify(ctx context.Context, email, image string) (*LoginResult, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(s.logger, "verify", requestID)

	var missing []string
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(image) == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, &Error{Kind: KindValidation, Message: "missing required fields", Fields: missing}
	}

	if err := s.gate.WaitReady(ctx); err != nil {
		opLogger.Warn("model not ready", zap.Error(err))
		return nil, wrapError(KindServiceUnavailable, "face model is warming up, retry shortly", err)
	}

	identity, err := s.lookupIdentity(ctx, opLogger, requestID, email)
	if err != nil {
		return nil, err
	}

	img, err := imagecodec.Decode(image, s.maxImageBytes)
	if err != nil {
		return nil, wrapError(KindInvalidImage, "image payload could not be decoded", err)
	}

	detections, err := s.embedder.DetectAndEmbed(ctx, img)
	if err != nil {
		opLogger.Error("embedding failed", zap.Error(err))
		return nil, wrapError(KindModelError, "face detection failed, try again", err)
	}
	primary, ok := embedder.PrimaryDetection(detections)
	if !ok {
		return nil, newError(KindNoFaceDetected, "no face detected in the image")
	}

	distance, err := face.BestDistance(primary.Descriptor, identity.Descriptors)
	if err != nil {
		opLogger.Error("descriptor comparison failed", zap.Error(err))
		return nil, wrapError(KindInternal, "internal error", err)
	}
	decision := face.Decide(distance, s.threshold)

	s.auditAttempt(ctx, opLogger, requestID, email, decision)

	if !decision.Accepted {
		opLogger.Info("face mismatch",
			zap.String("email", email),
			zap.Float64("distance", decision.Distance),
			zap.Float64("threshold", s.threshold))
		return nil, newError(KindFaceMismatch, "face does not match the enrolled identity")
	}

	opLogger.Info("login accepted",
		zap.String("email", email),
		zap.Float64("distance", decision.Distance))
	return &LoginResult{Email: email, Role: identity.Role, Decision: decision}, nil
}

// lookupIdentity reads through the Redis cache to the store. Cache failures
// are never fatal; the store remains the source of truth.
func (s *VerificationService) lookupIdentity(ctx context.Context, opLogger *zap.Logger, requestID, email string) (*cachedIdentity, error) {
	cacheKey := identityCacheKey(email)

	var cached string
	err := s.retry.do(ctx, s.logger, "cache.get.identity", requestID, func() error {
		value, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		cached = value
		return nil
	})
	if err == nil {
		var payload cachedIdentity
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			opLogger.Warn("failed to decode cached identity", zap.Error(err))
		} else if len(payload.Descriptors) > 0 {
			return &payload, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		opLogger.Warn("failed to read identity cache", zap.Error(err))
	}

	identity, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindIdentityNotFound, "no identity enrolled for this email")
		}
		opLogger.Error("identity lookup failed", zap.Error(err))
		return nil, wrapError(KindInternal, "internal error", err)
	}

	payload := &cachedIdentity{
		Email:       identity.Email,
		Role:        identity.Role,
		Descriptors: identity.Descriptors,
	}
	if serialized, err := json.Marshal(payload); err == nil {
		if err := s.retry.do(ctx, s.logger, "cache.set.identity", requestID, func() error {
			return s.cache.Set(ctx, cacheKey, string(serialized), identityCacheTTL)
		}); err != nil {
			opLogger.Warn("failed to cache identity", zap.Error(err))
		}
	}
	return payload, nil
}

// auditAttempt records the decision for operators. Best-effort: an audit
// failure is logged, never surfaced to the caller.
func (s *VerificationService) auditAttempt(ctx context.Context, opLogger *zap.Logger, requestID, email string, decision face.Decision) {
	attempt := &store.VerificationAttempt{
		RequestID: requestID,
		Email:     email,
		Distance:  decision.Distance,
		Accepted:  decision.Accepted,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveAttempt(ctx, attempt); err != nil {
		opLogger.Warn("failed to persist verification attempt", zap.Error(err))
	}
}
