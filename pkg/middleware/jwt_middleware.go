package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lifesync/pkg/utils"
)

// JWTAuthMiddleware requires a user-scoped token and passes the user id to
// the handler chain.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if claims.Scope != utils.ScopeUser || claims.UserID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Account login required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
