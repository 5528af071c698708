package repositories

import (
	"context"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	FindByName(ctx context.Context, name string) (*entities.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Category, error)
}
