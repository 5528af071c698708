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

// ReviewService contém a lógica de negócio para avaliações de event managers
type ReviewService struct {
	reviews  repositories.ReviewRepository
	managers repositories.EventManagerRepository
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviews repositories.ReviewRepository,
	managers repositories.EventManagerRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		managers: managers,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// AddReview cria uma avaliação sobre um event manager vivo e publica o
// evento para o stream administrativo. Um mesmo usuário pode avaliar o
// mesmo event manager mais de uma vez.
func (s *ReviewService) AddReview(ctx context.Context, userID, eventManagerID string, rating int, comment string) (*entities.Review, error) {
	if _, err := uuid.Parse(eventManagerID); err != nil {
		return nil, errors.ErrInvalidID
	}

	detail, err := s.managers.FindByID(ctx, eventManagerID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.ErrReviewTargetNotFound
	}

	review := &entities.Review{
		EventManagerID: eventManagerID,
		UserID:         userID,
		Rating:         rating,
		Comment:        comment,
		CreatedAt:      s.now(),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"event_manager_id", eventManagerID,
		"rating", rating,
	)

	s.notifier.Broadcast(ports.NotificationReviewCreated, map[string]any{
		"review_id":        review.ID,
		"event_manager_id": eventManagerID,
		"rating":           rating,
	})

	return review, nil
}

// TopFiveStar retorna as avaliações nota 5 mais recentes para a vitrine
func (s *ReviewService) TopFiveStar(ctx context.Context) ([]*repositories.FiveStarReview, error) {
	return s.reviews.TopFiveStar(ctx)
}

// ByEventManager lista as avaliações vivas de um event manager
func (s *ReviewService) ByEventManager(ctx context.Context, eventManagerID string) ([]*repositories.ReviewEntry, error) {
	if _, err := uuid.Parse(eventManagerID); err != nil {
		return nil, errors.ErrInvalidID
	}

	detail, err := s.managers.FindByID(ctx, eventManagerID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.ErrEventManagerNotFound
	}

	return s.reviews.ListByEventManager(ctx, eventManagerID)
}
