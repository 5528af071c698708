package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/services"
)

// PaymentHandler lida com requisições HTTP de checkout
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler cria um novo PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateCheckoutSession abre uma sessão de pagamento único
// @Summary Criar sessão de checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Success 201 {object} dto.CheckoutSessionResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/stripe/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.paymentService.CreateCheckout(c.Request.Context(), ports.CheckoutInput{
		ServiceName: req.ServiceName,
		AmountCents: req.AmountCents,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckoutSessionResponse(session))
}

// ConfirmPayment consulta o estado de uma sessão existente
// @Summary Confirmar pagamento
// @Tags payments
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {object} dto.PaymentResultResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/stripe/confirm-payment [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.paymentService.Confirm(c.Request.Context(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResultResponse(result))
}
