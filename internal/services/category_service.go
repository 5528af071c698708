package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// CategoryService contém a lógica de negócio para a taxonomia de categorias
type CategoryService struct {
	categories repositories.CategoryRepository
	managers   repositories.EventManagerRepository
	logger     ports.Logger
	now        func() time.Time
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(
	categories repositories.CategoryRepository,
	managers repositories.EventManagerRepository,
	logger ports.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		managers:   managers,
		logger:     logger,
		now:        time.Now,
	}
}

// Create cria uma categoria. Nome duplicado entre categorias vivas é rejeitado;
// o nome de uma categoria deletada pode ser reutilizado.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*entities.Category, error) {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCategoryExists
	}

	now := s.now()
	category := &entities.Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", category.ID, "name", name)
	return category, nil
}

// UpdateCategoryInput representa uma atualização parcial de categoria
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// Update aplica uma atualização parcial na categoria
func (s *CategoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*entities.Category, error) {
	category, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != category.Name {
		existing, err := s.categories.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrCategoryExists
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	category.UpdatedAt = s.now()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete faz soft delete de uma categoria. Perfis profissionais que a
// referenciam permanecem; a categoria apenas some das listagens.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.findLive(ctx, id); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category soft deleted", "category_id", id)
	return nil
}

// Get retorna uma categoria viva
func (s *CategoryService) Get(ctx context.Context, id string) (*entities.Category, error) {
	return s.findLive(ctx, id)
}

// List retorna todas as categorias vivas
func (s *CategoryService) List(ctx context.Context) ([]*entities.Category, error) {
	return s.categories.List(ctx)
}

// EventManagersByCategory retorna a projeção pública dos event managers
// cuja lista de categorias contém a categoria informada.
func (s *CategoryService) EventManagersByCategory(ctx context.Context, categoryID string) ([]*repositories.EventManagerSummary, error) {
	if _, err := s.findLive(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.managers.ListByCategory(ctx, categoryID)
}

func (s *CategoryService) findLive(ctx context.Context, id string) (*entities.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}

	return category, nil
}
