package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	repository
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{repository{db: db}}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByVerifyToken(ctx context.Context, token string) (*entities.User, error) {
	return r.findOne(ctx, "verify_token = ? AND verify_token <> ''", token)
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*entities.User, error) {
	return r.findOne(ctx, "reset_token = ? AND reset_token <> ''", token)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	return r.getDB(ctx).Save(model).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	now := time.Now().Unix()
	return r.getDB(ctx).Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	query := r.live(ctx).Model(&UserModel{})

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("created_at DESC").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, args ...any) (*entities.User, error) {
	var model UserModel

	if err := r.live(ctx).Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:                   user.ID,
		Name:                 user.Name,
		Email:                user.Email.String(),
		Phone:                user.Phone.String(),
		Address:              user.Address,
		ProfileImage:         user.ProfileImage,
		PasswordHash:         user.PasswordHash,
		Role:                 string(user.Role),
		OTP:                  user.OTP,
		OTPCreatedAt:         unixPtr(user.OTPCreatedAt),
		VerifyToken:          user.VerifyToken,
		VerifyTokenCreatedAt: unixPtr(user.VerifyTokenCreatedAt),
		ResetToken:           user.ResetToken,
		ResetTokenCreatedAt:  unixPtr(user.ResetTokenCreatedAt),
		IsVerified:           user.IsVerified,
		CreatedAt:            user.CreatedAt.Unix(),
		UpdatedAt:            user.UpdatedAt.Unix(),
		DeletedAt:            unixPtr(user.DeletedAt),
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	// Telefone é opcional em registros antigos
	var phone valueobjects.Phone
	if model.Phone != "" {
		phone, err = valueobjects.NewPhone(model.Phone)
		if err != nil {
			return nil, err
		}
	}

	return &entities.User{
		ID:                   model.ID,
		Name:                 model.Name,
		Email:                email,
		Phone:                phone,
		Address:              model.Address,
		ProfileImage:         model.ProfileImage,
		PasswordHash:         model.PasswordHash,
		Role:                 entities.Role(model.Role),
		OTP:                  model.OTP,
		OTPCreatedAt:         timePtr(model.OTPCreatedAt),
		VerifyToken:          model.VerifyToken,
		VerifyTokenCreatedAt: timePtr(model.VerifyTokenCreatedAt),
		ResetToken:           model.ResetToken,
		ResetTokenCreatedAt:  timePtr(model.ResetTokenCreatedAt),
		IsVerified:           model.IsVerified,
		CreatedAt:            time.Unix(model.CreatedAt, 0),
		UpdatedAt:            time.Unix(model.UpdatedAt, 0),
		DeletedAt:            timePtr(model.DeletedAt),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
