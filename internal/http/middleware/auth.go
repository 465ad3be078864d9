package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/session"
)

// RequireUser gates routes that need a signed-in session. Unauthenticated
// requests are sent to the login page.
func RequireUser(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.IsAuthenticated() {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
