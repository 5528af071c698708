package services

import (
	"context"

	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// PaymentService contém a lógica de negócio para checkout de serviços
type PaymentService struct {
	gateway ports.PaymentGateway
	logger  ports.Logger
}

// NewPaymentService cria um novo PaymentService
func NewPaymentService(gateway ports.PaymentGateway, logger ports.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateCheckout abre uma sessão de pagamento único para o serviço informado
func (s *PaymentService) CreateCheckout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutSession, error) {
	if input.ServiceName == "" || input.AmountCents <= 0 {
		return nil, errors.ErrPaymentFailed
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		s.logger.Error("checkout session failed", "service", input.ServiceName, "error", err)
		return nil, errors.ErrPaymentFailed
	}

	s.logger.Info("checkout session created", "session_id", session.ID)
	return session, nil
}

// Confirm consulta o estado de uma sessão de pagamento existente
func (s *PaymentService) Confirm(ctx context.Context, sessionID string) (*ports.PaymentResult, error) {
	if sessionID == "" {
		return nil, errors.ErrPaymentFailed
	}

	result, err := s.gateway.ConfirmPayment(ctx, sessionID)
	if err != nil {
		s.logger.Error("payment confirmation failed", "session_id", sessionID, "error", err)
		return nil, errors.ErrPaymentFailed
	}

	return result, nil
}
