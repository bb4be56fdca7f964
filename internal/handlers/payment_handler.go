package handlers

import (
	"net/http"

	"photobook_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.GET("/pending", h.GetPendingPayments)
		payments.PUT("/markPaid/:id", h.MarkPaid)
	}
}

func (h *PaymentHandler) GetPendingPayments(c *gin.Context) {
	rows, err := h.paymentService.GetPendingPayments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	bookingID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.paymentService.MarkPaymentPaid(bookingID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment updated & notification sent ✅"})
}
