package middleware

import (
	"net/http"
	"strings"

	"employee-admin/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers after a successful check.
const (
	CtxAdminID = "admin_id"
	CtxRole    = "role"
)

// legacyTokenHeader is the deprecated header form still sent by older
// frontend builds. `Authorization: Bearer <token>` is canonical.
const legacyTokenHeader = "x-auth-token"

// Authenticate validates the bearer token and attaches its claims to the
// request context. Verification is stateless: the identity store is not
// consulted again.
func Authenticate(signer *auth.TokenSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			c.Abort()
			return
		}

		claims, err := signer.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(CtxAdminID, claims.ID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ""
		}
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.GetHeader(legacyTokenHeader)
}
