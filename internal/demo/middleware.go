package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyUsername holds the authenticated username for the request.
const ContextKeyUsername = "username"

// Middleware guards the word and AI routes with a bearer token when enabled.
// Disabled, every request passes through unauthenticated.
type Middleware struct {
	enabled bool
	secret  string
}

func NewMiddleware(enabled bool, secret string) *Middleware {
	return &Middleware{enabled: enabled, secret: secret}
}

func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that rejects requests without a valid token.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := ValidateToken(parts[1], m.secret)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// abortUnauthorized answers in the word service envelope.
func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}
