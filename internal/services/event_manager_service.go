package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

// otpDigits é o tamanho do OTP gerado no cadastro profissional
const otpDigits = 6

// EventManagerService contém a lógica de negócio para perfis profissionais
type EventManagerService struct {
	managers   repositories.EventManagerRepository
	users      repositories.UserRepository
	categories repositories.CategoryRepository
	uow        ports.UnitOfWork
	hasher     ports.PasswordHasher
	generator  ports.TokenGenerator
	emails     ports.EmailQueue
	logger     ports.Logger

	frontendURL string
	now         func() time.Time
}

// NewEventManagerService cria um novo EventManagerService
func NewEventManagerService(
	managers repositories.EventManagerRepository,
	users repositories.UserRepository,
	categories repositories.CategoryRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	generator ports.TokenGenerator,
	emails ports.EmailQueue,
	logger ports.Logger,
	frontendURL string,
) *EventManagerService {
	return &EventManagerService{
		managers:    managers,
		users:       users,
		categories:  categories,
		uow:         uow,
		hasher:      hasher,
		generator:   generator,
		emails:      emails,
		logger:      logger,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// RegisterEventManagerInput representa os dados do cadastro profissional:
// a conta de usuário e o perfil profissional são criados juntos.
type RegisterEventManagerInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Password     string
	ProfileImage string

	Gender      string
	Age         int
	CategoryIDs []string
	Services    []string
	Description string
	WorkImages  []string
}

// Register cria a conta com role eventManager e o perfil profissional de
// forma atômica: ou ambos existem ao final, ou nenhum.
func (s *EventManagerService) Register(ctx context.Context, input RegisterEventManagerInput) (*entities.User, *entities.EventManagerDetail, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, nil, err
	}

	phone, err := valueobjects.NewPhone(input.Phone)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, errors.ErrEmailAlreadyExists
	}

	if err := s.checkCategories(ctx, input.CategoryIDs); err != nil {
		return nil, nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	verifyToken, err := s.generator.HexToken(verifyTokenBytes)
	if err != nil {
		return nil, nil, err
	}

	otp, err := s.generator.NumericOTP(otpDigits)
	if err != nil {
		return nil, nil, err
	}

	services := make([]entities.ServiceTag, 0, len(input.Services))
	for _, raw := range input.Services {
		services = append(services, entities.ServiceTag(raw))
	}

	now := s.now()
	user := &entities.User{
		Name:                 input.Name,
		Email:                email,
		Phone:                phone,
		Address:              input.Address,
		ProfileImage:         input.ProfileImage,
		PasswordHash:         hash,
		Role:                 entities.RoleEventManager,
		OTP:                  otp,
		OTPCreatedAt:         &now,
		VerifyToken:          verifyToken,
		VerifyTokenCreatedAt: &now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := user.Validate(); err != nil {
		return nil, nil, err
	}

	detail := &entities.EventManagerDetail{
		Gender:      entities.Gender(input.Gender),
		Age:         input.Age,
		CategoryIDs: input.CategoryIDs,
		Services:    services,
		Description: input.Description,
		WorkImages:  input.WorkImages,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, user); err != nil {
			return err
		}

		detail.UserID = user.ID
		if err := detail.Validate(); err != nil {
			return err
		}

		return s.managers.Create(txCtx, detail)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("event manager registered", "user_id", user.ID, "detail_id", detail.ID)

	s.enqueueEmail(ctx, ports.EmailMessage{
		Template: ports.EmailTemplateVerification,
		To:       email.String(),
		Data: map[string]string{
			"Name": user.Name,
			"Link": s.frontendURL + "/verify-email/" + verifyToken,
		},
	})

	return user, detail, nil
}

// FullDetails retorna o perfil público agregado de um event manager
func (s *EventManagerService) FullDetails(ctx context.Context, id string) (*repositories.EventManagerFullDetails, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidID
	}

	full, err := s.managers.FullDetailsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, errors.ErrEventManagerNotFound
	}

	return full, nil
}

// UpdateManagerProfileInput representa uma atualização parcial do perfil
// profissional. Campos nil permanecem inalterados.
type UpdateManagerProfileInput struct {
	Gender      *string
	Age         *int
	CategoryIDs []string
	Services    []string
	Description *string
	WorkImages  []string
}

// UpdateProfile aplica uma atualização parcial no perfil profissional do
// usuário autenticado.
func (s *EventManagerService) UpdateProfile(ctx context.Context, userID string, input UpdateManagerProfileInput) (*entities.EventManagerDetail, error) {
	detail, err := s.managers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.ErrEventManagerNotFound
	}

	if input.Gender != nil {
		detail.Gender = entities.Gender(*input.Gender)
	}
	if input.Age != nil {
		detail.Age = *input.Age
	}
	if input.CategoryIDs != nil {
		if err := s.checkCategories(ctx, input.CategoryIDs); err != nil {
			return nil, err
		}
		detail.CategoryIDs = input.CategoryIDs
	}
	if input.Services != nil {
		services := make([]entities.ServiceTag, 0, len(input.Services))
		for _, raw := range input.Services {
			services = append(services, entities.ServiceTag(raw))
		}
		detail.Services = services
	}
	if input.Description != nil {
		detail.Description = *input.Description
	}
	if input.WorkImages != nil {
		detail.WorkImages = input.WorkImages
	}

	if err := detail.Validate(); err != nil {
		return nil, err
	}

	detail.UpdatedAt = s.now()
	if err := s.managers.Update(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

// List retorna a projeção pública paginada de todos os event managers vivos
func (s *EventManagerService) List(ctx context.Context, page, pageSize int) ([]*repositories.EventManagerSummary, error) {
	return s.managers.List(ctx, page, pageSize)
}

// checkCategories garante que toda categoria referenciada existe e está viva
func (s *EventManagerService) checkCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return errors.ErrCategoryNotFound
	}

	return nil
}

func (s *EventManagerService) enqueueEmail(ctx context.Context, msg ports.EmailMessage) {
	if err := s.emails.Enqueue(ctx, msg); err != nil {
		s.logger.Error("failed to enqueue email",
			"to", msg.To,
			"template", msg.Template,
			"error", err,
		)
	}
}
