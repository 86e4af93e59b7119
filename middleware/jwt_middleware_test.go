package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateJWT("64f000000000000000000001", "a@x.com")
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	expiry := time.Unix(claims.ExpiresAt, 0)
	assert.WithinDuration(t, time.Now().Add(TokenValidity), expiry, time.Minute)
}

func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &JwtCustomClaims{
		UserID: "64f000000000000000000001",
		Email:  "a@x.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func protectedEcho() *echo.Echo {
	e := echo.New()
	group := e.Group("/api")
	group.Use(JWTMiddleware())
	group.GET("/ping", func(c echo.Context) error {
		userID, _ := ExtractUserID(c)
		return c.String(http.StatusOK, userID)
	})
	return e
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := protectedEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required. Please log in.")
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := protectedEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+expiredToken(t, "test-secret"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session expired. Please log in again.")
}

func TestJWTMiddlewareGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := protectedEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token. Please log in.")
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := protectedEcho()

	tokenString, err := GenerateJWT("64f000000000000000000001", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "64f000000000000000000001", rec.Body.String())
}
