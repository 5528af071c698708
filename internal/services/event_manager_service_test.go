package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

var _ = Describe("EventManagerService", func() {
	var (
		ctx        context.Context
		users      *memUserRepo
		managers   *memManagerRepo
		categories *memCategoryRepo
		uow        *fakeUoW
		queue      *fakeEmailQueue
		service    *EventManagerService
		weddingID  string
	)

	input := func() RegisterEventManagerInput {
		return RegisterEventManagerInput{
			Name:        "Carlos Eventos",
			Email:       "carlos@example.com",
			Phone:       "11912345678",
			Address:     "Av. Central, 500",
			Password:    "S3nhaForte!",
			Gender:      "male",
			Age:         35,
			CategoryIDs: []string{weddingID},
			Services:    []string{"wedding", "corporate"},
			Description: "Eventos corporativos e casamentos",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		users = newMemUserRepo()
		managers = newMemManagerRepo()
		categories = newMemCategoryRepo()
		uow = &fakeUoW{}
		queue = &fakeEmailQueue{}

		wedding := &entities.Category{Name: "Casamentos"}
		Expect(categories.Create(ctx, wedding)).To(Succeed())
		weddingID = wedding.ID

		service = NewEventManagerService(
			managers, users, categories, uow, fakeHasher{}, &fakeGenerator{},
			queue, nopLogger{}, "https://app.example.com",
		)
		service.now = func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}
	})

	Describe("Register", func() {
		It("cria conta e perfil profissional na mesma transação", func() {
			user, detail, err := service.Register(ctx, input())
			Expect(err).NotTo(HaveOccurred())

			Expect(user.Role).To(Equal(entities.RoleEventManager))
			Expect(user.OTP).To(Equal("777777"))
			Expect(detail.UserID).To(Equal(user.ID))
			Expect(detail.Services).To(ConsistOf(
				entities.ServiceWedding, entities.ServiceCorporate,
			))
			Expect(uow.calls).To(Equal(1))
		})

		It("rejeita email malformado como erro de formato", func() {
			bad := input()
			bad.Email = "carlos@"

			_, _, err := service.Register(ctx, bad)
			Expect(err).To(MatchError(valueobjects.ErrInvalidEmail))
			Expect(users.users).To(BeEmpty())
			Expect(managers.details).To(BeEmpty())
		})

		It("enfileira o email de verificação", func() {
			_, _, err := service.Register(ctx, input())
			Expect(err).NotTo(HaveOccurred())
			Expect(queue.sent).To(HaveLen(1))
			Expect(queue.sent[0].To).To(Equal("carlos@example.com"))
		})

		It("rejeita categoria inexistente antes de criar qualquer registro", func() {
			bad := input()
			bad.CategoryIDs = []string{weddingID, "00000000-0000-4000-8000-999999999999"}

			_, _, err := service.Register(ctx, bad)
			Expect(err).To(MatchError(errors.ErrCategoryNotFound))
			Expect(users.users).To(BeEmpty())
			Expect(managers.details).To(BeEmpty())
		})

		It("rejeita idade fora dos limites", func() {
			young := input()
			young.Age = 17

			_, _, err := service.Register(ctx, young)
			Expect(err).To(HaveOccurred())
			Expect(managers.details).To(BeEmpty())
		})

		It("rejeita email já usado por conta viva", func() {
			_, _, err := service.Register(ctx, input())
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Register(ctx, input())
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})
	})

	Describe("UpdateProfile", func() {
		It("aplica atualização parcial mantendo o resto", func() {
			user, detail, err := service.Register(ctx, input())
			Expect(err).NotTo(HaveOccurred())

			newAge := 36
			updated, err := service.UpdateProfile(ctx, user.ID, UpdateManagerProfileInput{
				Age: &newAge,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Age).To(Equal(36))
			Expect(updated.Gender).To(Equal(detail.Gender))
			Expect(updated.Description).To(Equal(detail.Description))
		})

		It("rejeita usuário sem perfil profissional", func() {
			_, err := service.UpdateProfile(ctx, "sem-perfil", UpdateManagerProfileInput{})
			Expect(err).To(MatchError(errors.ErrEventManagerNotFound))
		})
	})

	Describe("FullDetails", func() {
		It("rejeita id malformado antes de qualquer consulta", func() {
			_, err := service.FullDetails(ctx, "abc")
			Expect(err).To(MatchError(errors.ErrInvalidID))
		})

		It("responde not found para perfil inexistente", func() {
			_, err := service.FullDetails(ctx, "00000000-0000-4000-8000-000000000042")
			Expect(err).To(MatchError(errors.ErrEventManagerNotFound))
		})
	})
})
