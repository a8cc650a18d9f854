package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{
		"user_id":  "user-abc",
		"username": "alex",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("user_id").(string)
		gotUsername, _ = r.Context().Value("username").(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	JWTAuthMiddleware(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "user-abc" || gotUsername != "alex" {
		t.Errorf("context = (%q, %q), want (user-abc, alex)", gotUserID, gotUsername)
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})
	handler := JWTAuthMiddleware(testSecret)(next)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signToken(t, jwt.MapClaims{
			"user_id": "user-abc",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}, "other-secret")},
		{"expired token", "Bearer " + signToken(t, jwt.MapClaims{
			"user_id": "user-abc",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}, testSecret)},
		{"missing user id claim", "Bearer " + signToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}
