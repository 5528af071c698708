package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/errors"
)

var _ = Describe("CategoryService", func() {
	var (
		ctx        context.Context
		categories *memCategoryRepo
		service    *CategoryService
	)

	BeforeEach(func() {
		ctx = context.Background()
		categories = newMemCategoryRepo()
		service = NewCategoryService(categories, newMemManagerRepo(), nopLogger{})
	})

	Describe("Create", func() {
		It("cria categoria com nome inédito", func() {
			category, err := service.Create(ctx, "Casamentos", "Festas de casamento")
			Expect(err).NotTo(HaveOccurred())
			Expect(category.ID).NotTo(BeEmpty())
		})

		It("rejeita nome duplicado entre categorias vivas", func() {
			_, err := service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, "Casamentos", "outra descrição")
			Expect(err).To(MatchError(errors.ErrCategoryExists))
		})

		It("permite reusar o nome de uma categoria deletada", func() {
			category, err := service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, category.ID)).To(Succeed())

			_, err = service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("rejeita renomear para um nome já vivo", func() {
			_, err := service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())
			other, err := service.Create(ctx, "Aniversários", "")
			Expect(err).NotTo(HaveOccurred())

			name := "Casamentos"
			_, err = service.Update(ctx, other.ID, UpdateCategoryInput{Name: &name})
			Expect(err).To(MatchError(errors.ErrCategoryExists))
		})

		It("aceita atualizar mantendo o próprio nome", func() {
			category, err := service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())

			name := "Casamentos"
			description := "Atualizada"
			updated, err := service.Update(ctx, category.ID, UpdateCategoryInput{
				Name:        &name,
				Description: &description,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Description).To(Equal("Atualizada"))
		})
	})

	Describe("Delete", func() {
		It("some das listagens após o soft delete", func() {
			category, err := service.Create(ctx, "Casamentos", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, category.ID)).To(Succeed())

			list, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())

			_, err = service.Get(ctx, category.ID)
			Expect(err).To(MatchError(errors.ErrCategoryNotFound))
		})

		It("rejeita id malformado", func() {
			Expect(service.Delete(ctx, "abc")).To(MatchError(errors.ErrInvalidID))
		})
	})

	Describe("EventManagersByCategory", func() {
		It("exige categoria viva", func() {
			_, err := service.EventManagersByCategory(ctx, "00000000-0000-4000-8000-000000000042")
			Expect(err).To(MatchError(errors.ErrCategoryNotFound))
		})
	})
})
