package dto

import (
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// CreateCategoryRequest representa a requisição para criar uma categoria
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest representa uma atualização parcial de categoria
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
