package dto

import (
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// CreateCheckoutRequest representa a abertura de uma sessão de pagamento
type CreateCheckoutRequest struct {
	ServiceName string `json:"service_name" binding:"required,min=2,max=200"`
	AmountCents int64  `json:"amount_cents" binding:"required,gte=50"`
	Quantity    int64  `json:"quantity" binding:"omitempty,gte=1"`
}

// ConfirmPaymentRequest representa a confirmação de uma sessão existente
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// CheckoutSessionResponse retorna o necessário para o frontend redirecionar
type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// PaymentResultResponse reporta o estado de uma sessão após o checkout
type PaymentResultResponse struct {
	SessionID     string `json:"session_id"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

// ToCheckoutSessionResponse converte a sessão criada pelo gateway
func ToCheckoutSessionResponse(session *ports.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}
}

// ToPaymentResultResponse converte o resultado consultado no gateway
func ToPaymentResultResponse(result *ports.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		SessionID:     result.SessionID,
		PaymentStatus: result.PaymentStatus,
		AmountTotal:   result.AmountTotal,
		Currency:      result.Currency,
	}
}
