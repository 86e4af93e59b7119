// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TokenValidity is how long an issued session credential stays valid.
const TokenValidity = 24 * time.Hour

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// Valid implements the Claims interface so expiry failures carry a
// recognizable message.
func (c JwtCustomClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// JWTMiddleware returns a configured JWT middleware that attaches the
// decoded identity to the request context on success and distinguishes an
// expired session from a generally invalid credential on failure.
func JWTMiddleware() echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(GetJWTSecret()),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)

			c.Set("userId", claims.UserID)
			c.Set("email", claims.Email)
		},
		ErrorHandler: func(err error) error {
			if errors.Is(err, middleware.ErrJWTMissing) {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Authentication required. Please log in.")
			}
			if strings.Contains(err.Error(), "expired") {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Session expired. Please log in again.")
			}
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid or expired token. Please log in.")
		},
	})
}

// GenerateJWT issues a signed session credential embedding the account's
// id and email.
func GenerateJWT(userID, email string) (string, error) {
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}

	return token.SignedString([]byte(secret))
}

// ExtractUserID returns the authenticated user's id from the request
// context.
func ExtractUserID(c echo.Context) (string, error) {
	if userID, ok := c.Get("userId").(string); ok && userID != "" {
		return userID, nil
	}

	user := c.Get("user")
	if user == nil {
		return "", errors.New("invalid token")
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return "", errors.New("invalid token type")
	}

	if claims, ok := token.Claims.(*JwtCustomClaims); ok {
		return claims.UserID, nil
	}

	return "", errors.New("invalid user ID in token")
}
