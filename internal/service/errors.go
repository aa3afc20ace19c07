package service

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a service failure for the HTTP layer. Kinds are stable
// wire values; messages are free text.
type Kind string

const (
	// KindValidation: client input is incomplete or malformed.
	KindValidation Kind = "validation"
	// KindInvalidImage: the image payload could not be decoded.
	KindInvalidImage Kind = "invalid_image"
	// KindDuplicateIdentity: enrollment collided with an existing key.
	KindDuplicateIdentity Kind = "duplicate_identity"
	// KindNoFaceDetected: the model found no face in the capture.
	KindNoFaceDetected Kind = "no_face_detected"
	// KindIdentityNotFound: verification named an unknown key.
	KindIdentityNotFound Kind = "identity_not_found"
	// KindFaceMismatch: valid identity, biometric rejected.
	KindFaceMismatch Kind = "face_mismatch"
	// KindServiceUnavailable: the model is not warm yet.
	KindServiceUnavailable Kind = "service_unavailable"
	// KindModelError: the embedding computation failed.
	KindModelError Kind = "model_error"
	// KindInternal: store faults, dimension mismatches, anything else that
	// is never expected in correct operation.
	KindInternal Kind = "internal"
)

// Error is the typed failure returned by the services. The HTTP layer maps
// Kind to a status code and envelope; Err keeps full detail for operators.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s)", msg, e.Kind)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the failure kind from any error; unknown errors are
// internal faults.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
