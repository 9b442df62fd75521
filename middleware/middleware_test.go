package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"embervale/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		Username: "wanderer",
		UserID:   userID,
		Role:     []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signToken(t, "u123", time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "u123" {
		t.Fatalf("expected u123, got %s", claims.UserID)
	}

	if _, err := ValidateJWT("garbage"); err == nil {
		t.Error("missing Bearer prefix should be rejected")
	}
	if _, err := ValidateJWT("Bearer " + signToken(t, "u123", -time.Hour)); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	var gotUser string
	var gotRole []string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUser, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRole, _ = r.Context().Value(globals.RoleKey).([]string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/barter/proposals", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u123", time.Hour))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser != "u123" {
		t.Fatalf("user id not propagated: %q", gotUser)
	}
	if len(gotRole) != 1 || gotRole[0] != "user" {
		t.Fatalf("role not propagated: %v", gotRole)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler should not run without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/barter/proposals", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
