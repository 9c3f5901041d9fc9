package handler

import (
	"net/http"

	"github.com/tomdyson/stripe-payments-report/internal/logger"
	"github.com/tomdyson/stripe-payments-report/internal/session"
	"github.com/tomdyson/stripe-payments-report/internal/token"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")

	if err := h.verifier.Verify(password); err != nil {
		// Same response for empty, wrong, or partially-right input.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	credential, err := h.codec.Issue()
	if err != nil {
		logger.Error("failed to issue credential", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	session.SetCookie(
		c.Writer,
		credential,
		token.DefaultTTL,
		h.cookieOptions(),
	)

	logger.Info("login success", map[string]any{
		"ip": c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"status": "authenticated"})
}

func (h *Handler) Logout(c *gin.Context) {
	// Credentials are stateless, so logout is purely clearing the cookie.
	// Idempotent: logging out without a session is still a 204.
	session.ClearCookie(c.Writer, h.cookieOptions())

	c.Status(http.StatusNoContent)
}
