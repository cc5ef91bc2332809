package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "session-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runSession(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var inner echo.Context
	handler := Session(testSecret)(func(c echo.Context) error {
		inner = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, inner
}

func TestSessionInjectsGuestIdentity(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":       "guest-42",
		"email":     "g@example.com",
		"name":      "Grace",
		"last_name": "Guest",
		"phone":     "+12025550123",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	rec, inner := runSession(t, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	guest, ok := CurrentGuest(inner)
	require.True(t, ok)
	assert.Equal(t, "guest-42", guest.ID)
	assert.Equal(t, "Grace", guest.Name)
	assert.Equal(t, "guest-42", inner.Get("user_id"))
}

func TestSessionNumericSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(1234),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, inner := runSession(t, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	guest, ok := CurrentGuest(inner)
	require.True(t, ok)
	assert.Equal(t, "1234", guest.ID)
}

func TestSessionRejectsMissingHeader(t *testing.T) {
	rec, _ := runSession(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "guest-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := runSession(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "guest-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _ := runSession(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRejectsTokenWithoutSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "g@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := runSession(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
