package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

var _ = Describe("ReviewService", func() {
	const managerID = "7b0fbb77-1f0b-4f1f-9be1-2b9f6fcd0001"

	var (
		ctx      context.Context
		users    *memUserRepo
		reviews  *memReviewRepo
		managers *memManagerRepo
		notifier *fakeNotifier
		service  *ReviewService
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = newMemUserRepo()
		reviews = &memReviewRepo{users: users}
		managers = newMemManagerRepo()
		notifier = &fakeNotifier{}

		Expect(users.Create(ctx, &entities.User{ID: "user-1", Name: "Ana"})).To(Succeed())

		detail := &entities.EventManagerDetail{
			ID:     managerID,
			UserID: "user-em",
			Gender: entities.GenderFemale,
			Age:    30,
		}
		Expect(managers.Create(ctx, detail)).To(Succeed())

		service = NewReviewService(reviews, managers, notifier, nopLogger{})
		service.now = func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}
	})

	Describe("AddReview", func() {
		It("persiste a avaliação e publica o evento", func() {
			review, err := service.AddReview(ctx, "user-1", managerID, 5, "excelente")
			Expect(err).NotTo(HaveOccurred())
			Expect(review.ID).NotTo(BeEmpty())
			Expect(review.Rating).To(Equal(5))
			Expect(notifier.events).To(ConsistOf(ports.NotificationReviewCreated))
		})

		It("rejeita id malformado antes de qualquer consulta", func() {
			_, err := service.AddReview(ctx, "user-1", "nao-é-uuid", 5, "")
			Expect(err).To(MatchError(errors.ErrInvalidID))
			Expect(reviews.reviews).To(BeEmpty())
		})

		It("rejeita alvo inexistente", func() {
			_, err := service.AddReview(ctx, "user-1", "7b0fbb77-1f0b-4f1f-9be1-2b9f6fcd9999", 5, "")
			Expect(err).To(MatchError(errors.ErrReviewTargetNotFound))
		})

		It("rejeita nota fora da faixa sem persistir", func() {
			for _, rating := range []int{0, 6} {
				_, err := service.AddReview(ctx, "user-1", managerID, rating, "")
				Expect(err).To(MatchError(entities.ErrRatingOutOfRange))
			}
			Expect(reviews.reviews).To(BeEmpty())
			Expect(notifier.events).To(BeEmpty())
		})

		It("permite o mesmo usuário avaliar o mesmo alvo mais de uma vez", func() {
			_, err := service.AddReview(ctx, "user-1", managerID, 4, "bom")
			Expect(err).NotTo(HaveOccurred())
			_, err = service.AddReview(ctx, "user-1", managerID, 5, "melhorou")
			Expect(err).NotTo(HaveOccurred())
			Expect(reviews.reviews).To(HaveLen(2))
		})
	})

	Describe("TopFiveStar", func() {
		It("retorna apenas avaliações nota 5, limitadas a 5", func() {
			for i := 0; i < 7; i++ {
				_, err := service.AddReview(ctx, "user-1", managerID, 5, "top")
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := service.AddReview(ctx, "user-1", managerID, 4, "quase")
			Expect(err).NotTo(HaveOccurred())

			top, err := service.TopFiveStar(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(HaveLen(5))
			for _, review := range top {
				Expect(review.Rating).To(Equal(entities.MaxRating))
			}
		})
	})

	Describe("ByEventManager", func() {
		It("lista as avaliações do alvo", func() {
			_, err := service.AddReview(ctx, "user-1", managerID, 3, "ok")
			Expect(err).NotTo(HaveOccurred())

			entries, err := service.ByEventManager(ctx, managerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Rating).To(Equal(3))
		})

		It("rejeita alvo inexistente", func() {
			_, err := service.ByEventManager(ctx, "7b0fbb77-1f0b-4f1f-9be1-2b9f6fcd9999")
			Expect(err).To(MatchError(errors.ErrEventManagerNotFound))
		})

		It("esconde avaliações de autor soft-deleted", func() {
			_, err := service.AddReview(ctx, "user-1", managerID, 5, "ótimo")
			Expect(err).NotTo(HaveOccurred())
			Expect(users.Delete(ctx, "user-1")).To(Succeed())

			entries, err := service.ByEventManager(ctx, managerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())

			top, err := service.TopFiveStar(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(BeEmpty())
		})
	})
})
