package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/infrastructure/config"
)

// Gateway encapsula a integração com o Stripe.
// Usa um client próprio ao invés da chave global do SDK, mantendo a
// configuração injetável.
type Gateway struct {
	api         *client.API
	currency    string
	frontendURL string
}

// NewGateway cria o gateway de pagamentos
func NewGateway(cfg config.StripeConfig, frontendURL string) *Gateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &Gateway{
		api:         api,
		currency:    cfg.Currency,
		frontendURL: frontendURL,
	}
}

var _ ports.PaymentGateway = (*Gateway)(nil)

// CreateCheckoutSession cria uma sessão de pagamento única no Stripe
func (g *Gateway) CreateCheckoutSession(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutSession, error) {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ServiceName),
					},
					UnitAmount: stripe.Int64(input.AmountCents),
				},
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(g.frontendURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.frontendURL + "/payment/cancel"),
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session failed: %w", err)
	}

	return &ports.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ConfirmPayment consulta o estado de uma sessão existente
func (g *Gateway) ConfirmPayment(ctx context.Context, sessionID string) (*ports.PaymentResult, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe session lookup failed: %w", err)
	}

	return &ports.PaymentResult{
		SessionID:     sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}, nil
}
