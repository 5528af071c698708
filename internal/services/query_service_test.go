package services

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

var _ = Describe("QueryService", func() {
	var (
		ctx      context.Context
		queries  *memQueryRepo
		emails   *fakeEmailQueue
		notifier *fakeNotifier
		service  *QueryService
	)

	BeforeEach(func() {
		ctx = context.Background()
		queries = &memQueryRepo{}
		emails = &fakeEmailQueue{}
		notifier = &fakeNotifier{}
		service = NewQueryService(queries, emails, notifier, nopLogger{})
	})

	Describe("Create", func() {
		It("persiste a mensagem, confirma por email e notifica os admins", func() {
			query, err := service.Create(ctx, "Maria", "maria@example.com", "Quero orçamento para um casamento.")
			Expect(err).NotTo(HaveOccurred())
			Expect(query.ID).NotTo(BeEmpty())

			Expect(emails.sent).To(HaveLen(1))
			Expect(emails.sent[0].Template).To(Equal(ports.EmailTemplateQueryAck))
			Expect(emails.sent[0].To).To(Equal("maria@example.com"))

			Expect(notifier.events).To(ConsistOf(ports.NotificationQueryCreated))
		})

		It("rejeita mensagem vazia sem persistir nada", func() {
			_, err := service.Create(ctx, "Maria", "maria@example.com", "")
			Expect(err).To(HaveOccurred())
			Expect(queries.queries).To(BeEmpty())
			Expect(emails.sent).To(BeEmpty())
			Expect(notifier.events).To(BeEmpty())
		})

		It("rejeita mensagem acima do limite de 2000 caracteres", func() {
			long := make([]byte, 2001)
			for i := range long {
				long[i] = 'a'
			}
			_, err := service.Create(ctx, "Maria", "maria@example.com", string(long))
			Expect(err).To(HaveOccurred())
			Expect(queries.queries).To(BeEmpty())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for i := 0; i < 5; i++ {
				_, err := service.Create(ctx, "Maria", "maria@example.com", fmt.Sprintf("mensagem %d", i))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("pagina os resultados", func() {
			first, err := service.List(ctx, 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(HaveLen(2))

			last, err := service.List(ctx, 3, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(last).To(HaveLen(1))
		})

		It("retorna lista vazia além da última página", func() {
			out, err := service.List(ctx, 10, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
		})
	})
})
