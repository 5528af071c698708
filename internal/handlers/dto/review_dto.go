package dto

import (
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// AddReviewRequest representa a criação de uma avaliação
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

// ReviewResponse representa a resposta de uma avaliação criada
type ReviewResponse struct {
	ID             string    `json:"id"`
	EventManagerID string    `json:"event_manager_id"`
	UserID         string    `json:"user_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// FiveStarReviewResponse é uma avaliação nota 5 da vitrine pública
type FiveStarReviewResponse struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewer_name"`
	ManagerName  string    `json:"manager_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID,
		EventManagerID: review.EventManagerID,
		UserID:         review.UserID,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt,
	}
}

// ToReviewEntryResponses converte avaliações juntadas com o avaliador
func ToReviewEntryResponses(entries []*repositories.ReviewEntry) []ReviewEntryResponse {
	responses := make([]ReviewEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ReviewEntryResponse{
			ID:           entry.ID,
			ReviewerName: entry.ReviewerName,
			Rating:       entry.Rating,
			Comment:      entry.Comment,
			CreatedAt:    entry.CreatedAt,
		}
	}
	return responses
}

// ToFiveStarReviewResponses converte as avaliações da vitrine
func ToFiveStarReviewResponses(reviews []*repositories.FiveStarReview) []FiveStarReviewResponse {
	responses := make([]FiveStarReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = FiveStarReviewResponse{
			ID:           review.ID,
			Rating:       review.Rating,
			Comment:      review.Comment,
			ReviewerName: review.ReviewerName,
			ManagerName:  review.ManagerName,
			CreatedAt:    review.CreatedAt,
		}
	}
	return responses
}
