package handlers

import (
	"errors"
	"net/http"

	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// sessionCookieName is the cookie carrying the session credential,
	// set at registration and echoed on every authenticated call.
	sessionCookieName = "sessionId"

	// userIDKey is the gin context key holding the resolved user id.
	userIDKey = "userId"
)

// sessionMiddleware resolves the session cookie to a user id before any
// ledger operation runs. Resolution fails closed: no cookie, or a cookie
// that does not match a stored session, aborts with 401.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	credential, err := c.Cookie(sessionCookieName)
	if err != nil || credential == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing session cookie",
		})
		return
	}

	userID, err := h.services.Sessions.Resolve(c.Request.Context(), credential)
	if err != nil {
		// Only a clean rejection means the credential is bad; a store
		// failure must not tell the client its session is invalid.
		if errors.Is(err, service.ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid session",
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("session_resolve_failed", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": errResolveSession,
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID reads the resolved user id the middleware stored.
func currentUserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	s, _ := id.(string)
	return s
}
