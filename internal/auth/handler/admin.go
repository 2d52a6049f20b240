package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/logger"
	"members-portal/internal/middleware"
)

func (h *Handler) Admin(c *gin.Context) {
	h.renderAdmin(c, http.StatusOK, "")
}

func (h *Handler) Promote(c *gin.Context) {
	email := c.PostForm("email")

	if err := h.auth.Promote(c.Request.Context(), email); err != nil {
		logger.Error("promote failed", map[string]any{
			"target": email,
			"error":  err.Error(),
		})
		h.renderAdmin(c, http.StatusInternalServerError, "Internal error occurred.")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) Demote(c *gin.Context) {
	email := c.PostForm("email")

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	err := h.auth.Demote(c.Request.Context(), sess.Email, email)

	switch {
	case errors.Is(err, auth.ErrSelfDemotion):
		h.renderAdmin(c, http.StatusForbidden, "You cannot demote your own account.")
		return
	case err != nil:
		logger.Error("demote failed", map[string]any{
			"target": email,
			"error":  err.Error(),
		})
		h.renderAdmin(c, http.StatusInternalServerError, "Internal error occurred.")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) renderAdmin(c *gin.Context, status int, errMsg string) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("failed to list users", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "admin", gin.H{
			"Error": "Internal error occurred.",
		})
		return
	}

	c.HTML(status, "admin", gin.H{
		"Users": users,
		"Error": errMsg,
	})
}
