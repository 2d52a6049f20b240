package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/logger"
)

func (h *Handler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup", gin.H{})
}

func (h *Handler) Signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	u, err := h.auth.Signup(c.Request.Context(), name, email, password)

	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, "signup", gin.H{
			"Error": "Invalid input format.",
		})
		return
	case errors.Is(err, auth.ErrEmailTaken):
		c.HTML(http.StatusConflict, "signup", gin.H{
			"Error": "Email is already registered.",
		})
		return
	case err != nil:
		logger.Error("signup failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "signup", gin.H{
			"Error": "Internal error occurred. Please try again.",
		})
		return
	}

	if err := h.startSession(c, u); err != nil {
		logger.Error("failed to create session", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "signup", gin.H{
			"Error": "Internal error occurred. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/members")
}
