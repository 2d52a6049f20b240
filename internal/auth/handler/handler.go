package handler

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/middleware"
	"members-portal/internal/session"
	"members-portal/internal/user"
)

// memberImages is the pool the members page picks from at random.
var memberImages = []string{
	"cat1.jpg",
	"cat2.jpg",
	"cat3.jpg",
	"cat4.jpg",
	"cat5.jpg",
}

type Handler struct {
	auth          *auth.Service
	sessions      session.Store
	sessionTTL    time.Duration
	signingSecret string
}

func NewHandler(
	authService *auth.Service,
	sessions session.Store,
	sessionTTL time.Duration,
	signingSecret string,
) *Handler {
	return &Handler{
		auth:          authService,
		sessions:      sessions,
		sessionTTL:    sessionTTL,
		signingSecret: signingSecret,
	}
}

// RegisterRoutes is the single authoritative route table.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	loadSession := middleware.LoadSession(h.sessions, h.signingSecret)
	requireSession := middleware.RequireSession(h.sessions, h.signingSecret)
	requireAdmin := middleware.RequireAdmin()

	r.GET("/", loadSession, h.Home)
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	members := r.Group("/", requireSession)
	members.GET("/members", h.Members)

	admin := r.Group("/", requireSession, requireAdmin)
	admin.GET("/admin", h.Admin)
	admin.POST("/promote", h.Promote)
	admin.POST("/demote", h.Demote)

	r.NoRoute(h.NotFound)
}

func (h *Handler) Home(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.HTML(http.StatusOK, "home", gin.H{"LoggedIn": false})
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"LoggedIn": true,
		"Name":     sess.Name,
	})
}

func (h *Handler) Members(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "members", gin.H{
		"Name":  sess.Name,
		"Role":  sess.Role,
		"Image": memberImages[rand.Intn(len(memberImages))],
	})
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404", nil)
}

// startSession allocates a session for the user, persists it and issues
// the signed HTTP-only cookie. The expiry is absolute: it is fixed here
// and never refreshed on activity.
func (h *Handler) startSession(c *gin.Context, u *user.User) error {
	id, err := session.GenerateID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	err = h.sessions.Create(c.Request.Context(), session.Session{
		ID:        id,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		session.Sign(id, h.signingSecret),
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	return nil
}
