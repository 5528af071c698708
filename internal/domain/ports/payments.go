package ports

import "context"

// CheckoutInput descreve o item único cobrado em uma sessão de checkout
type CheckoutInput struct {
	ServiceName string
	AmountCents int64
	Quantity    int64
}

// CheckoutSession é o retorno mínimo necessário para o frontend redirecionar
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentResult reporta o estado de uma sessão após o checkout
type PaymentResult struct {
	SessionID     string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

// PaymentGateway define a interface para o provedor de pagamentos
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutInput) (*CheckoutSession, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*PaymentResult, error)
}
