package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextUserIDKey = "userID"
)

// UserIDHeader carries the caller identity in MVP deployments. It is
// trivially spoofable and only acceptable behind a trusted network; the
// IdentityExtractor seam exists so verified tokens can replace it without
// touching handlers.
const UserIDHeader = "X-User-Id"

// IdentityExtractor resolves the caller's user id from a request.
type IdentityExtractor interface {
	UserID(c *gin.Context) (string, error)
}

// HeaderIdentity reads the opaque user id from the X-User-Id header.
type HeaderIdentity struct{}

func (HeaderIdentity) UserID(c *gin.Context) (string, error) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		return "", fmt.Errorf("%s header required", UserIDHeader)
	}
	return userID, nil
}

// tokenClaims mirrors the JWT payload issued by the identity provider.
type tokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenIdentity validates a Bearer JWT and extracts the user id from its
// claims. Selected instead of HeaderIdentity when a signing secret is
// configured.
type TokenIdentity struct {
	secret string
}

func NewTokenIdentity(secret string) TokenIdentity {
	return TokenIdentity{secret: secret}
}

func (t TokenIdentity) UserID(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("Authorization header format must be Bearer {token}")
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(t.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("token has expired")
		}
		return "", fmt.Errorf("invalid token: %v", err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token or missing uid claim")
	}

	return claims.UserID, nil
}

// IdentityMiddleware rejects requests without a resolvable caller identity
// and stores the user id in the gin context for downstream handlers.
func IdentityMiddleware(identity IdentityExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := identity.UserID(c)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}
