package dto

import (
	"time"

	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// RegisterEventManagerRequest representa o cadastro profissional: conta de
// usuário e perfil profissional criados em uma única chamada multipart.
type RegisterEventManagerRequest struct {
	Name     string `form:"name" binding:"required,min=2,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required,phone"`
	Address  string `form:"address" binding:"required,max=255"`
	Password string `form:"password" binding:"required,min=8,max=72,password_strength"`

	Gender      string   `form:"gender" binding:"required,oneof=male female other"`
	Age         int      `form:"age" binding:"required,gte=18,lte=100"`
	CategoryIDs []string `form:"categoryIds" binding:"omitempty,dive,uuid"`
	Services    []string `form:"services" binding:"omitempty,dive,oneof=wedding birthday corporate concert anniversary festival"`
	Description string   `form:"description" binding:"omitempty,max=2000"`
}

// UpdateEventManagerProfileRequest representa uma atualização parcial do
// perfil profissional
type UpdateEventManagerProfileRequest struct {
	Gender      *string  `form:"gender" binding:"omitempty,oneof=male female other"`
	Age         *int     `form:"age" binding:"omitempty,gte=18,lte=100"`
	CategoryIDs []string `form:"categoryIds" binding:"omitempty,dive,uuid"`
	Services    []string `form:"services" binding:"omitempty,dive,oneof=wedding birthday corporate concert anniversary festival"`
	Description *string  `form:"description" binding:"omitempty,max=2000"`
}

// EventManagerSummaryResponse é a projeção pública mínima de um event manager
type EventManagerSummaryResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ReviewEntryResponse é uma avaliação juntada com o nome do avaliador
type ReviewEntryResponse struct {
	ID           string    `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventManagerDetailsResponse é o perfil público agregado de um event manager
type EventManagerDetailsResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfileImage string `json:"profile_image,omitempty"`

	Gender      string             `json:"gender"`
	Age         int                `json:"age"`
	Description string             `json:"description,omitempty"`
	Services    []string           `json:"services"`
	WorkImages  []string           `json:"work_images"`
	Categories  []CategoryResponse `json:"categories"`

	Reviews       []ReviewEntryResponse `json:"reviews"`
	AverageRating float64               `json:"average_rating"`
}

// ToEventManagerSummaryResponse converte a projeção pública do repositório
func ToEventManagerSummaryResponse(summary *repositories.EventManagerSummary) EventManagerSummaryResponse {
	return EventManagerSummaryResponse{
		ID:           summary.ID,
		UserID:       summary.UserID,
		Name:         summary.Name,
		Address:      summary.Address,
		ProfileImage: summary.ProfileImage,
	}
}

// ToEventManagerSummaryResponses converte uma lista de projeções públicas
func ToEventManagerSummaryResponses(summaries []*repositories.EventManagerSummary) []EventManagerSummaryResponse {
	responses := make([]EventManagerSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ToEventManagerSummaryResponse(summary)
	}
	return responses
}

// ToEventManagerDetailsResponse converte o perfil agregado do repositório
func ToEventManagerDetailsResponse(full *repositories.EventManagerFullDetails) EventManagerDetailsResponse {
	services := make([]string, len(full.Services))
	for i, s := range full.Services {
		services[i] = string(s)
	}

	categories := make([]CategoryResponse, len(full.Categories))
	for i, category := range full.Categories {
		categories[i] = ToCategoryResponse(category)
	}

	reviews := make([]ReviewEntryResponse, len(full.Reviews))
	for i, review := range full.Reviews {
		reviews[i] = ReviewEntryResponse{
			ID:           review.ID,
			ReviewerName: review.ReviewerName,
			Rating:       review.Rating,
			Comment:      review.Comment,
			CreatedAt:    review.CreatedAt,
		}
	}

	workImages := full.WorkImages
	if workImages == nil {
		workImages = []string{}
	}

	return EventManagerDetailsResponse{
		ID:            full.ID,
		UserID:        full.UserID,
		Name:          full.Name,
		Email:         full.Email,
		Phone:         full.Phone,
		Address:       full.Address,
		ProfileImage:  full.ProfileImage,
		Gender:        string(full.Gender),
		Age:           full.Age,
		Description:   full.Description,
		Services:      services,
		WorkImages:    workImages,
		Categories:    categories,
		Reviews:       reviews,
		AverageRating: full.AverageRating,
	}
}
