// Package handlers exposes the enrollment and verification flows over HTTP
// and owns the mapping from service failure kinds to status codes.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/faceauth/internal/auth"
	"github.com/educonnect/faceauth/internal/service"
)

// MaxBodyBytes caps a request body; captures are size-bounded upstream too,
// but the limit here stops oversized payloads before JSON parsing.
const MaxBodyBytes = 8 << 20

// Enroller is the signup flow consumed by the HTTP layer.
type Enroller interface {
	Enroll(ctx context.Context, req service.EnrollRequest) (*service.EnrollResult, error)
}

// Verifier is the login flow consumed by the HTTP layer.
type Verifier interface {
	Verify(ctx context.Context, email, image string) (*service.LoginResult, error)
	MetricsSummary(ctx context.Context) (*service.MetricsSummary, error)
}

// ReadyChecker reports whether the embedding model is warm.
type ReadyChecker interface {
	Ready() bool
}

type signupRequest struct {
	DisplayName string `json:"displayName"`
	Age         int    `json:"age"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Image       string `json:"image"`
}

type loginRequest struct {
	Email string `json:"email"`
	Image string `json:"image"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, enroller Enroller, verifier Verifier, ready ReadyChecker, tokens *auth.TokenIssuer, authMiddleware gin.HandlerFunc) {
	router.Use(limitBody(MaxBodyBytes))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		if !ready.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"kind":    string(service.KindServiceUnavailable),
				"message": "face model is warming up",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/signup", func(c *gin.Context) {
		var req signupRequest
		if err := bindJSON(c, &req); err != nil {
			return
		}

		result, err := enroller.Enroll(c.Request.Context(), service.EnrollRequest{
			DisplayName: req.DisplayName,
			Age:         req.Age,
			Email:       req.Email,
			Role:        req.Role,
			Image:       req.Image,
		})
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status": "ok",
			"key":    result.Key,
			"role":   result.Role,
		})
	})

	router.POST("/login", func(c *gin.Context) {
		var req loginRequest
		if err := bindJSON(c, &req); err != nil {
			return
		}

		result, err := verifier.Verify(c.Request.Context(), req.Email, req.Image)
		if err != nil {
			// A clean mismatch is a successful request with a negative
			// decision, not an error envelope.
			if service.KindOf(err) == service.KindFaceMismatch {
				c.JSON(http.StatusOK, gin.H{"status": "ok", "accepted": false})
				return
			}
			writeError(c, err)
			return
		}

		resp := gin.H{
			"status":   "ok",
			"accepted": true,
			"role":     result.Role,
		}
		if tokens != nil {
			if token, err := tokens.Issue(result.Email, result.Role); err == nil {
				resp["token"] = token
			}
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/metrics", authMiddleware, func(c *gin.Context) {
		summary, err := verifier.MetricsSummary(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

func limitBody(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}

func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "error",
				"kind":    string(service.KindValidation),
				"message": "request body too large",
			})
			return err
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"kind":    string(service.KindValidation),
			"message": "malformed JSON body",
		})
		return err
	}
	return nil
}

// writeError maps failure kinds to HTTP statuses. Internal detail stays in
// server logs; the envelope carries only the kind and a safe message.
func writeError(c *gin.Context, err error) {
	kind := service.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case service.KindValidation, service.KindInvalidImage, service.KindNoFaceDetected:
		status = http.StatusBadRequest
	case service.KindDuplicateIdentity:
		status = http.StatusConflict
	case service.KindIdentityNotFound:
		status = http.StatusNotFound
	case service.KindServiceUnavailable:
		status = http.StatusServiceUnavailable
	case service.KindModelError:
		status = http.StatusBadGateway
	}

	body := gin.H{"status": "error", "kind": string(kind)}
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		body["message"] = svcErr.Message
		if len(svcErr.Fields) > 0 {
			body["fields"] = svcErr.Fields
		}
	} else {
		body["message"] = "internal error"
	}

	c.JSON(status, body)
}
