package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// EventManagerRepository implementa repositories.EventManagerRepository
type EventManagerRepository struct {
	repository
}

// NewEventManagerRepository cria um novo EventManagerRepository
func NewEventManagerRepository(db *gorm.DB) repositories.EventManagerRepository {
	return &EventManagerRepository{repository{db: db}}
}

func (r *EventManagerRepository) Create(ctx context.Context, detail *entities.EventManagerDetail) error {
	model, err := r.toModel(detail)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}
	detail.ID = model.ID

	return r.replaceCategories(db, model.ID, detail.CategoryIDs)
}

func (r *EventManagerRepository) FindByID(ctx context.Context, id string) (*entities.EventManagerDetail, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *EventManagerRepository) FindByUserID(ctx context.Context, userID string) (*entities.EventManagerDetail, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *EventManagerRepository) Update(ctx context.Context, detail *entities.EventManagerDetail) error {
	model, err := r.toModel(detail)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return err
	}

	return r.replaceCategories(db, model.ID, detail.CategoryIDs)
}

func (r *EventManagerRepository) List(ctx context.Context, page, pageSize int) ([]*repositories.EventManagerSummary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var rows []summaryRow
	err := r.getDB(ctx).
		Table("event_manager_details AS emd").
		Select("emd.id, emd.user_id, u.name, u.address, u.profile_image").
		Joins("JOIN users u ON u.id = emd.user_id AND u.deleted_at IS NULL").
		Where("emd.deleted_at IS NULL").
		Order("emd.created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toSummaries(rows), nil
}

// FullDetailsByID junta perfil profissional, usuário dono e avaliações vivas.
// A média das notas é determinística para o conjunto atual de avaliações;
// perfil sem avaliações tem média 0, nunca erro.
func (r *EventManagerRepository) FullDetailsByID(ctx context.Context, id string) (*repositories.EventManagerFullDetails, error) {
	db := r.getDB(ctx)

	var row fullDetailsRow
	err := db.
		Table("event_manager_details AS emd").
		Select("emd.id, emd.user_id, emd.gender, emd.age, emd.description, emd.services, emd.work_images, "+
			"u.name, u.email, u.phone, u.address, u.profile_image").
		Joins("JOIN users u ON u.id = emd.user_id AND u.deleted_at IS NULL").
		Where("emd.id = ? AND emd.deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	full := &repositories.EventManagerFullDetails{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		Address:      row.Address,
		ProfileImage: row.ProfileImage,
		Gender:       entities.Gender(row.Gender),
		Age:          row.Age,
		Description:  row.Description,
	}

	if err := json.Unmarshal([]byte(orEmptyList(row.Services)), &full.Services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	if err := json.Unmarshal([]byte(orEmptyList(row.WorkImages)), &full.WorkImages); err != nil {
		return nil, fmt.Errorf("failed to decode work images: %w", err)
	}

	// Categorias vivas do perfil
	var catModels []*CategoryModel
	err = db.
		Table("categories AS c").
		Select("c.*").
		Joins("JOIN event_manager_categories emc ON emc.category_id = c.id").
		Where("emc.event_manager_detail_id = ? AND c.deleted_at IS NULL", id).
		Order("c.name").
		Scan(&catModels).Error
	if err != nil {
		return nil, err
	}
	full.Categories = toCategoryEntities(catModels)

	// Avaliações vivas com nome do avaliador. Avaliador soft-deleted oculta
	// a avaliação da lista e da média, como em qualquer outra listagem.
	var reviewRows []reviewEntryRow
	err = db.
		Table("reviews AS rv").
		Select("rv.id, rv.rating, rv.comment, rv.created_at, u.name AS reviewer_name").
		Joins("JOIN users u ON u.id = rv.user_id AND u.deleted_at IS NULL").
		Where("rv.event_manager_id = ? AND rv.deleted_at IS NULL", id).
		Order("rv.created_at DESC").
		Scan(&reviewRows).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(reviewRows))
	full.Reviews = make([]*repositories.ReviewEntry, 0, len(reviewRows))
	for _, rr := range reviewRows {
		full.Reviews = append(full.Reviews, &repositories.ReviewEntry{
			ID:           rr.ID,
			ReviewerName: rr.ReviewerName,
			Rating:       rr.Rating,
			Comment:      rr.Comment,
			CreatedAt:    time.Unix(rr.CreatedAt, 0),
		})
		ratings = append(ratings, rr.Rating)
	}
	full.AverageRating = entities.AverageRating(ratings)

	return full, nil
}

// ListByCategory projeta apenas campos públicos: sem email, sem telefone
func (r *EventManagerRepository) ListByCategory(ctx context.Context, categoryID string) ([]*repositories.EventManagerSummary, error) {
	var rows []summaryRow
	err := r.getDB(ctx).
		Table("event_manager_details AS emd").
		Select("emd.id, emd.user_id, u.name, u.address, u.profile_image").
		Joins("JOIN event_manager_categories emc ON emc.event_manager_detail_id = emd.id").
		Joins("JOIN users u ON u.id = emd.user_id AND u.deleted_at IS NULL").
		Where("emc.category_id = ? AND emd.deleted_at IS NULL", categoryID).
		Order("u.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toSummaries(rows), nil
}

// replaceCategories substitui as associações de categoria do perfil
func (r *EventManagerRepository) replaceCategories(db *gorm.DB, detailID string, categoryIDs []string) error {
	if err := db.Where("event_manager_detail_id = ?", detailID).
		Delete(&EventManagerCategoryModel{}).Error; err != nil {
		return err
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]EventManagerCategoryModel, 0, len(categoryIDs))
	for _, catID := range categoryIDs {
		links = append(links, EventManagerCategoryModel{
			EventManagerDetailID: detailID,
			CategoryID:           catID,
		})
	}
	return db.Create(&links).Error
}

func (r *EventManagerRepository) findOne(ctx context.Context, cond string, args ...any) (*entities.EventManagerDetail, error) {
	var model EventManagerDetailModel

	if err := r.live(ctx).Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	detail, err := r.toEntity(&model)
	if err != nil {
		return nil, err
	}

	// Carregar ids de categoria associados
	var links []EventManagerCategoryModel
	if err := r.getDB(ctx).Where("event_manager_detail_id = ?", model.ID).Find(&links).Error; err != nil {
		return nil, err
	}
	for _, link := range links {
		detail.CategoryIDs = append(detail.CategoryIDs, link.CategoryID)
	}

	return detail, nil
}

// linhas de scan para queries com join
type summaryRow struct {
	ID           string
	UserID       string
	Name         string
	Address      string
	ProfileImage string
}

type fullDetailsRow struct {
	ID           string
	UserID       string
	Gender       string
	Age          int
	Description  string
	Services     string
	WorkImages   string
	Name         string
	Email        string
	Phone        string
	Address      string
	ProfileImage string
}

type reviewEntryRow struct {
	ID           string
	Rating       int
	Comment      string
	CreatedAt    int64
	ReviewerName string
}

func toSummaries(rows []summaryRow) []*repositories.EventManagerSummary {
	out := make([]*repositories.EventManagerSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, &repositories.EventManagerSummary{
			ID:           row.ID,
			UserID:       row.UserID,
			Name:         row.Name,
			Address:      row.Address,
			ProfileImage: row.ProfileImage,
		})
	}
	return out
}

func orEmptyList(s string) string {
	if s == "" {
		return "[]"
	}
	return s
}

// Conversores
func (r *EventManagerRepository) toModel(detail *entities.EventManagerDetail) (*EventManagerDetailModel, error) {
	services, err := json.Marshal(detail.Services)
	if err != nil {
		return nil, err
	}
	images, err := json.Marshal(detail.WorkImages)
	if err != nil {
		return nil, err
	}

	return &EventManagerDetailModel{
		ID:          detail.ID,
		UserID:      detail.UserID,
		Gender:      string(detail.Gender),
		Age:         detail.Age,
		Description: detail.Description,
		Services:    string(services),
		WorkImages:  string(images),
		CreatedAt:   detail.CreatedAt.Unix(),
		UpdatedAt:   detail.UpdatedAt.Unix(),
		DeletedAt:   unixPtr(detail.DeletedAt),
	}, nil
}

func (r *EventManagerRepository) toEntity(model *EventManagerDetailModel) (*entities.EventManagerDetail, error) {
	detail := &entities.EventManagerDetail{
		ID:          model.ID,
		UserID:      model.UserID,
		Gender:      entities.Gender(model.Gender),
		Age:         model.Age,
		Description: model.Description,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   timePtr(model.DeletedAt),
	}

	if err := json.Unmarshal([]byte(orEmptyList(model.Services)), &detail.Services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	if err := json.Unmarshal([]byte(orEmptyList(model.WorkImages)), &detail.WorkImages); err != nil {
		return nil, fmt.Errorf("failed to decode work images: %w", err)
	}

	return detail, nil
}

func toCategoryEntities(models []*CategoryModel) []*entities.Category {
	out := make([]*entities.Category, 0, len(models))
	for _, m := range models {
		out = append(out, &entities.Category{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			CreatedAt:   time.Unix(m.CreatedAt, 0),
			UpdatedAt:   time.Unix(m.UpdatedAt, 0),
			DeletedAt:   timePtr(m.DeletedAt),
		})
	}
	return out
}
