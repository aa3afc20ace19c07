package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/faceauth/internal/auth"
	"github.com/educonnect/faceauth/internal/service"
)

const testJWTSecret = "test-secret"

type stubEnroller struct {
	result *service.EnrollResult
	err    error
	calls  int
}

func (s *stubEnroller) Enroll(ctx context.Context, req service.EnrollRequest) (*service.EnrollResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubVerifier struct {
	result  *service.LoginResult
	err     error
	summary *service.MetricsSummary
}

func (s *stubVerifier) Verify(ctx context.Context, email, image string) (*service.LoginResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubVerifier) MetricsSummary(ctx context.Context) (*service.MetricsSummary, error) {
	if s.summary != nil {
		return s.summary, nil
	}
	return &service.MetricsSummary{}, nil
}

type stubReady struct {
	ready bool
}

func (s *stubReady) Ready() bool { return s.ready }

func newTestRouter(enroller Enroller, verifier Verifier, ready ReadyChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	issuer := auth.NewTokenIssuer(testJWTSecret, "", time.Hour)
	RegisterRoutes(router, enroller, verifier, ready, issuer, auth.JWTMiddleware(testJWTSecret, ""))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reader := &bytes.Buffer{}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", resp.Body.String(), err)
	}
	return body
}

func TestSignupSuccess(t *testing.T) {
	enroller := &stubEnroller{result: &service.EnrollResult{Key: "student@test.com", Role: "user"}}
	router := newTestRouter(enroller, &stubVerifier{}, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/signup", map[string]interface{}{
		"displayName": "Student One",
		"age":         21,
		"email":       "student@test.com",
		"image":       "aGVsbG8=",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["status"] != "ok" || body["key"] != "student@test.com" || body["role"] != "user" {
		t.Fatalf("unexpected body: %v", body)
	}
	if enroller.calls != 1 {
		t.Fatalf("expected one enroll call, got %d", enroller.calls)
	}
}

func TestSignupValidationErrorCarriesFields(t *testing.T) {
	enroller := &stubEnroller{err: &service.Error{
		Kind:    service.KindValidation,
		Message: "missing required fields",
		Fields:  []string{"age", "image"},
	}}
	router := newTestRouter(enroller, &stubVerifier{}, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/signup", map[string]interface{}{"email": "student@test.com"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["status"] != "error" || body["kind"] != string(service.KindValidation) {
		t.Fatalf("unexpected envelope: %v", body)
	}
	fields, ok := body["fields"].([]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("expected missing fields in envelope, got %v", body["fields"])
	}
}

func TestSignupDuplicateMapsToConflict(t *testing.T) {
	enroller := &stubEnroller{err: &service.Error{
		Kind:    service.KindDuplicateIdentity,
		Message: "an identity with this email already exists",
	}}
	router := newTestRouter(enroller, &stubVerifier{}, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/signup", map[string]interface{}{"email": "student@test.com"})

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestSignupMalformedJSON(t *testing.T) {
	enroller := &stubEnroller{}
	router := newTestRouter(enroller, &stubVerifier{}, &stubReady{ready: true})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if enroller.calls != 0 {
		t.Fatal("malformed JSON must not reach the enrollment flow")
	}
}

func TestLoginAcceptedIncludesRoleAndToken(t *testing.T) {
	verifier := &stubVerifier{result: &service.LoginResult{Email: "student@test.com", Role: "user"}}
	router := newTestRouter(&stubEnroller{}, verifier, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/login", map[string]interface{}{
		"email": "student@test.com",
		"image": "aGVsbG8=",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["accepted"] != true || body["role"] != "user" {
		t.Fatalf("unexpected body: %v", body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a session token on accepted login")
	}
}

func TestLoginMismatchIsCleanRejection(t *testing.T) {
	verifier := &stubVerifier{err: &service.Error{
		Kind:    service.KindFaceMismatch,
		Message: "face does not match the enrolled identity",
	}}
	router := newTestRouter(&stubEnroller{}, verifier, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/login", map[string]interface{}{
		"email": "student@test.com",
		"image": "aGVsbG8=",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for a clean mismatch, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["status"] != "ok" || body["accepted"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, hasToken := body["token"]; hasToken {
		t.Fatal("rejected login must not carry a token")
	}
}

func TestLoginUnknownIdentityMapsToNotFound(t *testing.T) {
	verifier := &stubVerifier{err: &service.Error{
		Kind:    service.KindIdentityNotFound,
		Message: "no identity enrolled for this email",
	}}
	router := newTestRouter(&stubEnroller{}, verifier, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/login", map[string]interface{}{
		"email": "nobody@test.com",
		"image": "aGVsbG8=",
	})

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["kind"] != string(service.KindIdentityNotFound) {
		t.Fatalf("unexpected kind: %v", body["kind"])
	}
}

func TestLoginUnavailableWhileWarming(t *testing.T) {
	verifier := &stubVerifier{err: &service.Error{
		Kind:    service.KindServiceUnavailable,
		Message: "face model is warming up, retry shortly",
	}}
	router := newTestRouter(&stubEnroller{}, verifier, &stubReady{ready: false})

	resp := doJSON(t, router, http.MethodPost, "/login", map[string]interface{}{
		"email": "student@test.com",
		"image": "aGVsbG8=",
	})

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestInternalErrorsStayGeneric(t *testing.T) {
	verifier := &stubVerifier{err: &service.Error{
		Kind:    service.KindInternal,
		Message: "internal error",
	}}
	router := newTestRouter(&stubEnroller{}, verifier, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodPost, "/login", map[string]interface{}{
		"email": "student@test.com",
		"image": "aGVsbG8=",
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "sql") {
		t.Fatalf("internal detail leaked: %s", resp.Body.String())
	}
}

func TestReadyEndpointTracksModelGate(t *testing.T) {
	router := newTestRouter(&stubEnroller{}, &stubVerifier{}, &stubReady{ready: false})

	resp := doJSON(t, router, http.MethodGet, "/ready", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while cold, got %d", resp.Code)
	}

	router = newTestRouter(&stubEnroller{}, &stubVerifier{}, &stubReady{ready: true})
	resp = doJSON(t, router, http.MethodGet, "/ready", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 once warm, got %d", resp.Code)
	}
}

func TestMetricsRequiresBearerToken(t *testing.T) {
	router := newTestRouter(&stubEnroller{}, &stubVerifier{}, &stubReady{ready: true})

	resp := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	issuer := auth.NewTokenIssuer(testJWTSecret, "", time.Hour)
	token, err := issuer.Issue("student@test.com", "user")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	router := newTestRouter(&stubEnroller{}, &stubVerifier{}, &stubReady{ready: true})

	huge := strings.Repeat("a", MaxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"image":"`+huge+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}
