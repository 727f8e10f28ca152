package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lifesync/pkg/utils"
)

// NotFoundHandler answers unmatched paths under the shared response envelope.
// Under /api the gate check runs first, so a locked client sees the same 401
// on every path and cannot map which routes exist.
func NotFoundHandler() gin.HandlerFunc {
	gate := GateMiddleware()
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			gate(c)
			if c.IsAborted() {
				return
			}
		}
		utils.RespondError(c, http.StatusNotFound, "Not found")
	}
}
