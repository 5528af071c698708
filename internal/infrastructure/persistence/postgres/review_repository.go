package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	repository
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{repository{db: db}}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := &ReviewModel{
		ID:             review.ID,
		EventManagerID: review.EventManagerID,
		UserID:         review.UserID,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt.Unix(),
		DeletedAt:      unixPtr(review.DeletedAt),
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	review.ID = model.ID
	return nil
}

func (r *ReviewRepository) ListByEventManager(ctx context.Context, eventManagerID string) ([]*repositories.ReviewEntry, error) {
	var rows []reviewEntryRow
	err := r.getDB(ctx).
		Table("reviews AS rv").
		Select("rv.id, rv.rating, rv.comment, rv.created_at, u.name AS reviewer_name").
		Joins("JOIN users u ON u.id = rv.user_id AND u.deleted_at IS NULL").
		Where("rv.event_manager_id = ? AND rv.deleted_at IS NULL", eventManagerID).
		Order("rv.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*repositories.ReviewEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &repositories.ReviewEntry{
			ID:           row.ID,
			ReviewerName: row.ReviewerName,
			Rating:       row.Rating,
			Comment:      row.Comment,
			CreatedAt:    time.Unix(row.CreatedAt, 0),
		})
	}
	return entries, nil
}

func (r *ReviewRepository) TopFiveStar(ctx context.Context) ([]*repositories.FiveStarReview, error) {
	var rows []fiveStarRow
	err := r.getDB(ctx).
		Table("reviews AS rv").
		Select("rv.id, rv.rating, rv.comment, rv.created_at, "+
			"ru.name AS reviewer_name, mu.name AS manager_name").
		Joins("JOIN users ru ON ru.id = rv.user_id AND ru.deleted_at IS NULL").
		Joins("JOIN event_manager_details emd ON emd.id = rv.event_manager_id AND emd.deleted_at IS NULL").
		Joins("JOIN users mu ON mu.id = emd.user_id AND mu.deleted_at IS NULL").
		Where("rv.rating = ? AND rv.deleted_at IS NULL", entities.MaxRating).
		Order("rv.created_at DESC").
		Limit(repositories.TopReviewsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*repositories.FiveStarReview, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &repositories.FiveStarReview{
			ID:           row.ID,
			Rating:       row.Rating,
			Comment:      row.Comment,
			ReviewerName: row.ReviewerName,
			ManagerName:  row.ManagerName,
			CreatedAt:    time.Unix(row.CreatedAt, 0),
		})
	}
	return reviews, nil
}

type fiveStarRow struct {
	ID           string
	Rating       int
	Comment      string
	CreatedAt    int64
	ReviewerName string
	ManagerName  string
}
