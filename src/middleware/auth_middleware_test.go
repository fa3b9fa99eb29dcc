package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID, gotEmail string
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("user_id").(string)
		gotEmail = r.Context().Value("email").(string)
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "user-123",
		"email":   "user@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", gotUserID)
	assert.Equal(t, "user@example.com", gotEmail)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "Bearer nonsense"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
			"user_id": "user-123",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})},
		{"expired", "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
			"user_id": "user-123",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})},
		{"no user_id claim", "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
			"email": "user@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
