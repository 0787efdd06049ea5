package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoenix/workout-api/internal/api"
	"phoenix/workout-api/internal/domain"
)

const testJWTSecret = "test-signing-secret"

func signedToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func TestTokenIdentity(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity(testJWTSecret))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-7", time.Now().Add(time.Hour)))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var plan domain.WorkoutPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "user-7", plan.UserID)
}

func TestTokenIdentity_MissingHeader(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity(testJWTSecret))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	// X-User-Id is not honored in token mode.
	req.Header.Set("X-User-Id", "user-7")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenIdentity_MalformedHeader(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity(testJWTSecret))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("Authorization", "Token abcdef")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenIdentity_WrongSecret(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity("a-different-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-7", time.Now().Add(time.Hour)))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenIdentity_ExpiredToken(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity(testJWTSecret))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-7", time.Now().Add(-time.Hour)))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "expired")
}

func TestTokenIdentity_MissingUIDClaim(t *testing.T) {
	router := newTestRouter(t, api.NewTokenIdentity(testJWTSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
