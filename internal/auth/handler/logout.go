package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"members-portal/internal/session"
)

// Logout destroys the session and clears the cookie. It is idempotent:
// logging out without a session is not an error.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if id, ok := session.Verify(cookie.Value, h.signingSecret); ok {
			// best-effort delete; the TTL reaps stragglers
			_ = h.sessions.Delete(c.Request.Context(), id)
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/login")
}
