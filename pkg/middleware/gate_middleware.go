package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lifesync/pkg/utils"
)

// GateMiddleware enforces the shared-password unlock. While a client has no
// valid gate token every path gets the same locked response, so the API leaks
// nothing about what exists behind the gate. A user token also passes, a
// logged-in session is by definition unlocked.
func GateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Site is locked")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Site is locked")
			c.Abort()
			return
		}

		if claims.Scope != utils.ScopeGate && claims.Scope != utils.ScopeUser {
			utils.RespondError(c, http.StatusUnauthorized, "Site is locked")
			c.Abort()
			return
		}

		c.Next()
	}
}
