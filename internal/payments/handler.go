package payments

import (
	"net/http"

	"github.com/tomdyson/stripe-payments-report/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the read endpoints to an already-gated group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/payment-links", h.ListPaymentLinks)
	api.GET("/payments/:payment_link_id", h.ListPayments)
}

func (h *Handler) ListPaymentLinks(c *gin.Context) {
	links, err := h.service.ListPaymentLinksWithProducts(c.Request.Context())
	if err != nil {
		logger.Error("failed to list payment links", map[string]any{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *Handler) ListPayments(c *gin.Context) {
	paymentLinkID := c.Param("payment_link_id")

	payments, err := h.service.ListPayments(c.Request.Context(), paymentLinkID)
	if err != nil {
		logger.Error("failed to list payments", map[string]any{
			"error":           err.Error(),
			"payment_link_id": paymentLinkID,
			"request_id":      c.GetString("request_id"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
