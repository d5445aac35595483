package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/utils"
)

func signToken(t *testing.T, secret, userID, phone string) string {
	t.Helper()
	claims := IdentityClaims{
		UserID:      userID,
		PhoneNumber: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareInjectsIdentity(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}

	var gotUserID, gotPhone string
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotPhone, _ = utils.GetPhoneNumberFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-1", "+15551234"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "+15551234", gotPhone)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1", "+15551234"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}, cfg)

	claims := IdentityClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsTokenWithoutUserID(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/trips/get-user-trips", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "", "+15551234"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
