package dto

import (
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// AddQueryRequest representa uma mensagem do formulário público de contato
type AddQueryRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=2000"`
}

// QueryResponse representa a resposta de uma mensagem de contato
type QueryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToQueryResponse converte uma entidade ContactQuery para QueryResponse
func ToQueryResponse(query *entities.ContactQuery) QueryResponse {
	return QueryResponse{
		ID:        query.ID,
		Name:      query.Name,
		Email:     query.Email,
		Message:   query.Message,
		CreatedAt: query.CreatedAt,
	}
}

// ToQueryResponses converte uma lista de mensagens de contato
func ToQueryResponses(queries []*entities.ContactQuery) []QueryResponse {
	responses := make([]QueryResponse, len(queries))
	for i, query := range queries {
		responses[i] = ToQueryResponse(query)
	}
	return responses
}
