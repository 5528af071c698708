package repositories

import (
	"context"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// TopReviewsLimit limita o destaque de avaliações cinco estrelas na home
const TopReviewsLimit = 5

// ReviewRepository define a interface para persistência de avaliações
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByEventManager(ctx context.Context, eventManagerID string) ([]*ReviewEntry, error)

	// TopFiveStar retorna as avaliações nota 5 mais recentes, juntadas com os
	// nomes do avaliador e do event manager avaliado, limitadas a TopReviewsLimit.
	TopFiveStar(ctx context.Context) ([]*FiveStarReview, error)
}

// FiveStarReview é uma avaliação nota 5 juntada para exibição na vitrine
type FiveStarReview struct {
	ID           string
	Rating       int
	Comment      string
	ReviewerName string
	ManagerName  string
	CreatedAt    time.Time
}
