package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/logger"
)

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	u, err := h.auth.Login(c.Request.Context(), email, password)

	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, "login", gin.H{
			"Error": "Invalid input format.",
		})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		// one message for unknown email and wrong password
		c.HTML(http.StatusUnauthorized, "login", gin.H{
			"Error": "Invalid email or password.",
		})
		return
	case err != nil:
		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "login", gin.H{
			"Error": "Internal error occurred.",
		})
		return
	}

	if err := h.startSession(c, u); err != nil {
		logger.Error("failed to create session", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "login", gin.H{
			"Error": "Internal error occurred.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/members")
}
