package repositories

import (
	"context"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// QueryRepository define a interface para persistência de mensagens de contato
type QueryRepository interface {
	Create(ctx context.Context, query *entities.ContactQuery) error
	List(ctx context.Context, page, pageSize int) ([]*entities.ContactQuery, error)
}
