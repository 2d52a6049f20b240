package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"members-portal/internal/session"
	"members-portal/internal/user"
)

// ContextSessionKey is where RequireSession stores the loaded session on
// the gin context.
const ContextSessionKey = "auth.session"

// SessionFromContext returns the session attached by RequireSession.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// RequireSession loads the session referenced by the signed cookie.
// A missing, forged or expired session redirects to the login entry
// point rather than rendering an error page.
func RequireSession(store session.Store, signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := lookup(c, store, signingSecret)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// RequireAdmin allows the request through iff the session role is admin.
// It must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok || sess.Role != string(user.RoleAdmin) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadSession attaches the session when one exists but never rejects the
// request. Pages like the home page use it to vary content by login state.
func LoadSession(store session.Store, signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := lookup(c, store, signingSecret); sess != nil {
			c.Set(ContextSessionKey, sess)
		}
		c.Next()
	}
}

func lookup(c *gin.Context, store session.Store, signingSecret string) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	id, ok := session.Verify(cookie.Value, signingSecret)
	if !ok {
		return nil
	}

	// the store treats expired sessions as absent
	sess, err := store.Get(c.Request.Context(), id)
	if err != nil || sess == nil {
		return nil
	}

	return sess
}
