package services

import (
	"context"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

// Tamanhos dos tokens aleatórios gerados nos fluxos de conta
const (
	verifyTokenBytes = 24
	resetTokenBytes  = 24
)

// UserService contém a lógica de negócio para contas de usuário:
// cadastro, login, verificação de email e redefinição de senha.
type UserService struct {
	users       repositories.UserRepository
	managers    repositories.EventManagerRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	generator   ports.TokenGenerator
	emails      ports.EmailQueue
	logger      ports.Logger
	frontendURL string

	// injetável para testes dos fluxos com janela de expiração
	now func() time.Time
}

// NewUserService cria um novo UserService
func NewUserService(
	users repositories.UserRepository,
	managers repositories.EventManagerRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	generator ports.TokenGenerator,
	emails ports.EmailQueue,
	logger ports.Logger,
	frontendURL string,
) *UserService {
	return &UserService{
		users:       users,
		managers:    managers,
		hasher:      hasher,
		tokens:      tokens,
		generator:   generator,
		emails:      emails,
		logger:      logger,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// RegisterInput representa os dados para criar uma conta
type RegisterInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Password     string
	ProfileImage string
}

// Register cria uma conta com role user, enfileira o email de verificação e
// retorna o usuário criado. Duplicidade de email considera apenas contas vivas.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	phone, err := valueobjects.NewPhone(input.Phone)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	verifyToken, err := s.generator.HexToken(verifyTokenBytes)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &entities.User{
		Name:                 input.Name,
		Email:                email,
		Phone:                phone,
		Address:              input.Address,
		ProfileImage:         input.ProfileImage,
		PasswordHash:         hash,
		Role:                 entities.RoleUser,
		VerifyToken:          verifyToken,
		VerifyTokenCreatedAt: &now,
		IsVerified:           false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", email.String())

	// Entrega assíncrona: a conta existe mesmo que o email falhe
	s.enqueueEmail(ctx, ports.EmailMessage{
		Template: ports.EmailTemplateVerification,
		To:       email.String(),
		Data: map[string]string{
			"Name": user.Name,
			"Link": s.frontendURL + "/verify-email/" + verifyToken,
		},
	})

	return user, nil
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// Login verifica as credenciais e emite o token de sessão envelopado
func (s *UserService) Login(ctx context.Context, input LoginInput) (string, *entities.User, error) {
	role, err := entities.ParseRole(input.Role)
	if err != nil {
		return "", nil, errors.ErrRoleMismatch
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.ErrUserNotFound
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if user.Role != role {
		return "", nil, errors.ErrRoleMismatch
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role), user.Email.String())
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// VerifyEmail consome o token de verificação.
// Token expirado é limpo imediatamente: uma segunda tentativa com o mesmo
// token falha como inválido, forçando reemissão.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerifyToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrInvalidToken
	}

	if user.VerificationExpired(s.now()) {
		user.ClearVerification()
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		return errors.ErrTokenExpired
	}

	user.IsVerified = true
	user.ClearVerification()
	user.UpdatedAt = s.now()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("email verified", "user_id", user.ID)
	return nil
}

// ForgotPassword gera um token de reset de uso único e enfileira o email.
// Email desconhecido não é revelado ao chamador.
func (s *UserService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Debug("password reset requested for unknown email", "email", emailAddr)
		return nil
	}

	resetToken, err := s.generator.HexToken(resetTokenBytes)
	if err != nil {
		return err
	}

	now := s.now()
	user.ResetToken = resetToken
	user.ResetTokenCreatedAt = &now
	user.UpdatedAt = now

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.enqueueEmail(ctx, ports.EmailMessage{
		Template: ports.EmailTemplatePasswordReset,
		To:       user.Email.String(),
		Data: map[string]string{
			"Name": user.Name,
			"Link": s.frontendURL + "/reset-password/" + resetToken,
		},
	})

	return nil
}

// ResetPassword substitui o hash armazenado.
// A igualdade senha/confirmação é validada antes de qualquer mutação.
func (s *UserService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if password != confirm {
		return errors.ErrPasswordMismatch
	}

	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrInvalidToken
	}

	if user.ResetExpired(s.now()) {
		user.ClearReset()
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		return errors.ErrTokenExpired
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ClearReset()
	user.UpdatedAt = s.now()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

// ProfileOutput é o perfil dependente de role: usuários comuns e admins
// recebem apenas a conta; event managers recebem o perfil agregado.
type ProfileOutput struct {
	User           *entities.User
	ManagerProfile *repositories.EventManagerFullDetails
}

// Profile monta o perfil do usuário autenticado
func (s *UserService) Profile(ctx context.Context, user *entities.User) (*ProfileOutput, error) {
	out := &ProfileOutput{User: user}

	if !user.IsEventManager() {
		return out, nil
	}

	detail, err := s.managers.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		// Conta eventManager sem perfil profissional ainda
		return out, nil
	}

	full, err := s.managers.FullDetailsByID(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	out.ManagerProfile = full

	return out, nil
}

// UpdateProfileInput representa uma atualização parcial do perfil.
// Campos nil permanecem inalterados; os presentes seguem as regras de formato.
type UpdateProfileInput struct {
	Name         *string
	Phone        *string
	Address      *string
	ProfileImage *string
}

// UpdateProfile aplica uma atualização parcial na conta
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		phone, err := valueobjects.NewPhone(*input.Phone)
		if err != nil {
			return nil, err
		}
		user.Phone = phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers lista usuários vivos com filtros (admin)
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.users.List(ctx, filters)
}

// DeleteUser faz soft delete de uma conta (admin)
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user soft deleted", "user_id", id)
	return nil
}

// enqueueEmail enfileira sem propagar falha: email é fire-and-forget do
// ponto de vista da requisição, com retry a cargo do worker
func (s *UserService) enqueueEmail(ctx context.Context, msg ports.EmailMessage) {
	if err := s.emails.Enqueue(ctx, msg); err != nil {
		s.logger.Error("failed to enqueue email",
			"to", msg.To,
			"template", msg.Template,
			"error", err,
		)
	}
}
