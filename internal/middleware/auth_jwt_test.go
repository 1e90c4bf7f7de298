package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory/internal/config"
	"inventory/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, secret string, sub string, role string, signingMethod jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}

	token := jwt.NewWithClaims(signingMethod, claims)

	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func doRequest(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	cfg := config.Config{JWTSecret: testSecret}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ops/reorders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	h := middleware.OperatorAuth(cfg)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	assert.NoError(t, err)

	return rec, nextCalled
}

// =====================
// tests
// =====================

func TestOperatorAuth_MissingHeader(t *testing.T) {
	rec, nextCalled := doRequest(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_NotBearer(t *testing.T) {
	rec, nextCalled := doRequest(t, "Basic abcdef")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_WrongSecret(t *testing.T) {
	tok := mustMakeJWT(t, "other_secret", "op-1", "OPERATOR", jwt.SigningMethodHS256)
	rec, nextCalled := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_WrongSigningMethod(t *testing.T) {
	tok := mustMakeJWT(t, testSecret, "op-1", "OPERATOR", jwt.SigningMethodHS512)
	rec, nextCalled := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_WrongRole(t *testing.T) {
	tok := mustMakeJWT(t, testSecret, "op-1", "VIEWER", jwt.SigningMethodHS256)
	rec, nextCalled := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_EmptySub(t *testing.T) {
	tok := mustMakeJWT(t, testSecret, "", "OPERATOR", jwt.SigningMethodHS256)
	rec, nextCalled := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestOperatorAuth_Valid(t *testing.T) {
	tok := mustMakeJWT(t, testSecret, "op-1", "OPERATOR", jwt.SigningMethodHS256)
	rec, nextCalled := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestOperatorAuth_SetsOperatorInContext(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	tok := mustMakeJWT(t, testSecret, "op-1", "OPERATOR", jwt.SigningMethodHS256)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ops/reorders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var operator string
	h := middleware.OperatorAuth(cfg)(func(c echo.Context) error {
		operator, _ = c.Get(middleware.CtxOperatorKey).(string)
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "op-1", operator)
}
