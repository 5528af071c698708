package services

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// fakeGateway devolve respostas fixas e pode ser forçado a falhar
type fakeGateway struct {
	fail      bool
	lastInput ports.CheckoutInput
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, input ports.CheckoutInput) (*ports.CheckoutSession, error) {
	if g.fail {
		return nil, fmt.Errorf("gateway unavailable")
	}
	g.lastInput = input
	return &ports.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.example.com/cs_test_123"}, nil
}

func (g *fakeGateway) ConfirmPayment(_ context.Context, sessionID string) (*ports.PaymentResult, error) {
	if g.fail {
		return nil, fmt.Errorf("gateway unavailable")
	}
	return &ports.PaymentResult{
		SessionID:     sessionID,
		PaymentStatus: "paid",
		AmountTotal:   150000,
		Currency:      "usd",
	}, nil
}

var _ = Describe("PaymentService", func() {
	var (
		ctx     context.Context
		gateway *fakeGateway
		service *PaymentService
	)

	BeforeEach(func() {
		ctx = context.Background()
		gateway = &fakeGateway{}
		service = NewPaymentService(gateway, nopLogger{})
	})

	Describe("CreateCheckout", func() {
		It("abre a sessão e devolve a URL de checkout", func() {
			session, err := service.CreateCheckout(ctx, ports.CheckoutInput{
				ServiceName: "wedding",
				AmountCents: 150000,
				Quantity:    1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(session.ID).To(Equal("cs_test_123"))
			Expect(session.URL).To(HavePrefix("https://"))
			Expect(gateway.lastInput.AmountCents).To(Equal(int64(150000)))
		})

		It("rejeita valor não positivo sem chamar o gateway", func() {
			_, err := service.CreateCheckout(ctx, ports.CheckoutInput{ServiceName: "wedding", AmountCents: 0})
			Expect(err).To(MatchError(errors.ErrPaymentFailed))
			Expect(gateway.lastInput.ServiceName).To(BeEmpty())
		})

		It("rejeita serviço sem nome", func() {
			_, err := service.CreateCheckout(ctx, ports.CheckoutInput{AmountCents: 500})
			Expect(err).To(MatchError(errors.ErrPaymentFailed))
		})

		It("traduz falha do gateway em ErrPaymentFailed", func() {
			gateway.fail = true
			_, err := service.CreateCheckout(ctx, ports.CheckoutInput{ServiceName: "wedding", AmountCents: 500})
			Expect(err).To(MatchError(errors.ErrPaymentFailed))
		})
	})

	Describe("Confirm", func() {
		It("devolve o estado da sessão", func() {
			result, err := service.Confirm(ctx, "cs_test_123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.SessionID).To(Equal("cs_test_123"))
			Expect(result.PaymentStatus).To(Equal("paid"))
		})

		It("rejeita id de sessão vazio", func() {
			_, err := service.Confirm(ctx, "")
			Expect(err).To(MatchError(errors.ErrPaymentFailed))
		})

		It("traduz falha do gateway em ErrPaymentFailed", func() {
			gateway.fail = true
			_, err := service.Confirm(ctx, "cs_test_123")
			Expect(err).To(MatchError(errors.ErrPaymentFailed))
		})
	})
})
