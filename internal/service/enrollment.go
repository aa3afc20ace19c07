package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/educonnect/faceauth/internal/embedder"
	"github.com/educonnect/faceauth/internal/face"
	"github.com/educonnect/faceauth/internal/imagecodec"
	"github.com/educonnect/faceauth/internal/logging"
	"github.com/educonnect/faceauth/internal/store"
)

// EnrollRequest carries the signup input.
type EnrollRequest struct {
	DisplayName string
	Age         int
	Email       string
	Role        string
	Image       string
}

// EnrollResult is returned on successful signup.
type EnrollResult struct {
	Key  string
	Role string
}

// EnrollmentService registers new identities from a profile plus one face
// capture.
type EnrollmentService struct {
	store         IdentityStore
	cache         Cache
	embedder      Embedder
	gate          ModelGate
	logger        *zap.Logger
	maxImageBytes int
	retry         retryPolicy
}

// NewEnrollmentService constructs the signup flow.
func NewEnrollmentService(st IdentityStore, cache Cache, emb Embedder, gate ModelGate, logger *zap.Logger, maxImageBytes int) *EnrollmentService {
	return &EnrollmentService{
		store:         st,
		cache:         cache,
		embedder:      emb,
		gate:          gate,
		logger:        logger.Named("enrollment_service"),
		maxImageBytes: maxImageBytes,
		retry:         defaultRetryPolicy(),
	}
}

// Enroll validates the request, extracts a descriptor from the capture, and
// creates the identity. The store's unique index is the authority on
// duplicate keys; the lookup here only spares model compute on the obvious
// case. One durable write on success, none on any failure path.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*EnrollResult, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(s.logger, "enroll", requestID)

	var missing []string
	if strings.TrimSpace(req.DisplayName) == "" {
		missing = append(missing, "displayName")
	}
	if req.Age <= 0 {
		missing = append(missing, "age")
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Image) == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, &Error{Kind: KindValidation, Message: "missing required fields", Fields: missing}
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = DefaultRole
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, newError(KindDuplicateIdentity, "an identity with this email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		// Pre-check only; the create below still decides.
		opLogger.Warn("duplicate pre-check failed, continuing", zap.Error(err))
	}

	if err := s.gate.WaitReady(ctx); err != nil {
		opLogger.Warn("model not ready", zap.Error(err))
		return nil, wrapError(KindServiceUnavailable, "face model is warming up, retry shortly", err)
	}

	img, err := imagecodec.Decode(req.Image, s.maxImageBytes)
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
	if len(primary.Descriptor) != face.Dimension {
		err := &face.DimensionError{Want: face.Dimension, Got: len(primary.Descriptor)}
		opLogger.Error("model returned malformed descriptor", zap.Error(err))
		return nil, wrapError(KindInternal, "internal error", err)
	}

	identity := &store.Identity{
		Email:       email,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Age:         req.Age,
		Role:        role,
		Descriptors: store.DescriptorList{primary.Descriptor},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateIdentity(ctx, identity); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, wrapError(KindDuplicateIdentity, "an identity with this email already exists", err)
		}
		opLogger.Error("failed to persist identity", zap.Error(err))
		return nil, wrapError(KindInternal, "internal error", err)
	}

	// Stale cache entries would hide the new enrollment from logins.
	if err := s.retry.do(ctx, s.logger, "cache.del.identity", requestID, func() error {
		return s.cache.Del(ctx, identityCacheKey(email))
	}); err != nil {
		opLogger.Warn("failed to invalidate identity cache", zap.Error(err))
	}

	opLogger.Info("identity enrolled", zap.String("email", email), zap.String("role", role))
	return &EnrollResult{Key: email, Role: role}, nil
}
