package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AdminContextKey is where AdminAuth stores the admin's email.
const AdminContextKey = "admin"

// AdminAuth requires a valid admin bearer token.
func AdminAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set(AdminContextKey, subject)
		c.Next()
	}
}
