package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	repository
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{repository{db: db}}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := r.toModel(category)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	category.ID = model.ID
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []*CategoryModel
	if err := r.live(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	return toCategoryEntities(models), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	model := r.toModel(category)
	return r.getDB(ctx).Save(model).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	now := time.Now().Unix()
	return r.getDB(ctx).Model(&CategoryModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	if err := r.live(ctx).Model(&CategoryModel{}).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	return toCategoryEntities(models), nil
}

func (r *CategoryRepository) findOne(ctx context.Context, cond string, args ...any) (*entities.Category, error) {
	var model CategoryModel

	if err := r.live(ctx).Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cats := toCategoryEntities([]*CategoryModel{&model})
	return cats[0], nil
}

func (r *CategoryRepository) toModel(category *entities.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.Unix(),
		UpdatedAt:   category.UpdatedAt.Unix(),
		DeletedAt:   unixPtr(category.DeletedAt),
	}
}
