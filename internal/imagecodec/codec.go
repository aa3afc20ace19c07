// Package imagecodec turns the base64 image payloads sent by webcam captures
// into decoded buffers the embedding service can consume.
package imagecodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"
)

// DefaultMaxBytes caps a decoded capture at a few megabytes.
const DefaultMaxBytes = 5 << 20

// Image is a decoded still image.
type Image struct {
	Bytes  []byte
	Width  int
	Height int
	Format string
}

// DecodeError reports a malformed or unsupported image payload.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode image: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode image: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode accepts either a raw base64 string or a data URI
// ("data:image/png;base64,....") and returns the decoded image.
func Decode(payload string, maxBytes int) (*Image, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, &DecodeError{Reason: "empty payload"}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	if strings.HasPrefix(payload, "data:") {
		idx := strings.IndexByte(payload, ',')
		if idx < 0 {
			return nil, &DecodeError{Reason: "malformed data URI"}
		}
		if !strings.Contains(payload[:idx], ";base64") {
			return nil, &DecodeError{Reason: "data URI is not base64 encoded"}
		}
		payload = payload[idx+1:]
	}

	if encodedLen := len(payload); encodedLen/4*3 > maxBytes {
		return nil, &DecodeError{Reason: fmt.Sprintf("payload exceeds %d bytes", maxBytes)}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64 data", Err: err}
	}
	if len(raw) > maxBytes {
		return nil, &DecodeError{Reason: fmt.Sprintf("payload exceeds %d bytes", maxBytes)}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Reason: "unsupported or corrupt image", Err: err}
	}

	return &Image{Bytes: raw, Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
