package handler

import (
	"net/http"

	"github.com/tomdyson/stripe-payments-report/internal/auth/credentials"
	"github.com/tomdyson/stripe-payments-report/internal/session"
	"github.com/tomdyson/stripe-payments-report/internal/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	verifier     *credentials.Verifier
	codec        *token.Codec
	cookieSecure bool
}

func NewHandler(
	verifier *credentials.Verifier,
	codec *token.Codec,
	cookieSecure bool,
) *Handler {
	return &Handler{
		verifier:     verifier,
		codec:        codec,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)
}

func (h *Handler) cookieOptions() session.CookieOptions {
	return session.CookieOptions{
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
