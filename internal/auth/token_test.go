package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "faceauth", time.Hour)

	signed, err := issuer.Issue("s@test.com", "user")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if claims.Subject != "s@test.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "user" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if !containsAudience(claims.Audience, "faceauth") {
		t.Fatalf("expected audience claim, got %v", claims.Audience)
	}
}

func TestIssueRequiresSecretAndSubject(t *testing.T) {
	if _, err := NewTokenIssuer("", "", time.Hour).Issue("s@test.com", "user"); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewTokenIssuer("secret", "", time.Hour).Issue("", "user"); err == nil {
		t.Fatal("expected error for missing subject")
	}
}
