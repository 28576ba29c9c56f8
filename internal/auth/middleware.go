package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyPrincipal = "principal"

// PrincipalFromContext returns the principal set by RequireAuth.
// The zero value means no authenticated user.
func PrincipalFromContext(c *gin.Context) Principal {
	v, ok := c.Get(contextKeyPrincipal)
	if !ok {
		return Principal{}
	}
	p, ok := v.(Principal)
	if !ok {
		return Principal{}
	}
	return p
}

// RequireAuth returns a middleware that verifies the Bearer access token and
// sets the principal in context. Missing or invalid tokens get 401.
func RequireAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		p, err := m.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyPrincipal, p)
		c.Next()
	}
}
