package entities

import (
	"errors"
	"math"
	"time"
)

// Limites da escala de avaliação
const (
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// Review é uma avaliação feita por um usuário sobre um event manager.
// Criada uma única vez; nunca atualizada, apenas soft-deleted.
type Review struct {
	ID             string
	EventManagerID string
	UserID         string
	Rating         int
	Comment        string
	CreatedAt      time.Time
	DeletedAt      *time.Time // Soft delete
}

// IsDeleted verifica se a avaliação foi deletada (soft delete)
func (r *Review) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Validate valida regras de negócio da avaliação
func (r *Review) Validate() error {
	if r.EventManagerID == "" {
		return errors.New("event manager reference is required")
	}

	if r.UserID == "" {
		return errors.New("reviewer reference is required")
	}

	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingOutOfRange
	}

	return nil
}

// AverageRating calcula a média aritmética das notas, arredondada para uma
// casa decimal. Sem avaliações a média é 0, nunca um erro.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}
