package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// QueryRepository implementa repositories.QueryRepository
type QueryRepository struct {
	repository
}

// NewQueryRepository cria um novo QueryRepository
func NewQueryRepository(db *gorm.DB) repositories.QueryRepository {
	return &QueryRepository{repository{db: db}}
}

func (r *QueryRepository) Create(ctx context.Context, query *entities.ContactQuery) error {
	model := &ContactQueryModel{
		ID:        query.ID,
		Name:      query.Name,
		Email:     query.Email,
		Message:   query.Message,
		CreatedAt: query.CreatedAt.Unix(),
		DeletedAt: unixPtr(query.DeletedAt),
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	query.ID = model.ID
	return nil
}

func (r *QueryRepository) List(ctx context.Context, page, pageSize int) ([]*entities.ContactQuery, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var models []*ContactQueryModel
	err := r.live(ctx).Model(&ContactQueryModel{}).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	queries := make([]*entities.ContactQuery, 0, len(models))
	for _, m := range models {
		queries = append(queries, &entities.ContactQuery{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: time.Unix(m.CreatedAt, 0),
			DeletedAt: timePtr(m.DeletedAt),
		})
	}
	return queries, nil
}
