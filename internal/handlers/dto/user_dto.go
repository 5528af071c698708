package dto

import (
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/services"
)

// RegisterUserRequest representa a requisição de cadastro de usuário
// (multipart; a imagem de perfil opcional vem como arquivo `profileImage`)
type RegisterUserRequest struct {
	Name     string `form:"name" binding:"required,min=2,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required,phone"`
	Address  string `form:"address" binding:"required,max=255"`
	Password string `form:"password" binding:"required,min=8,max=72,password_strength"`
}

// LoginRequest representa a requisição de login.
// O role declarado deve coincidir com o role armazenado da conta.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=user admin eventManager"`
}

// ForgotPasswordRequest representa o pedido de redefinição de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest representa a redefinição de senha via token
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8,max=72,password_strength"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// UpdateProfileRequest representa uma atualização parcial do perfil
// (multipart; a nova imagem de perfil opcional vem como arquivo `profileImage`)
type UpdateProfileRequest struct {
	Name    *string `form:"name" binding:"omitempty,min=2,max=100"`
	Phone   *string `form:"phone" binding:"omitempty,phone"`
	Address *string `form:"address" binding:"omitempty,max=255"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse representa a resposta de login com o token de sessão
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse é o perfil dependente de role. ManagerProfile só é
// preenchido para contas eventManager com perfil profissional.
type ProfileResponse struct {
	User           UserResponse                 `json:"user"`
	ManagerProfile *EventManagerDetailsResponse `json:"manager_profile,omitempty"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email.String(),
		Phone:        user.Phone.String(),
		Address:      user.Address,
		ProfileImage: user.ProfileImage,
		Role:         string(user.Role),
		IsVerified:   user.IsVerified,
		CreatedAt:    user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToProfileResponse converte a saída do serviço de perfil
func ToProfileResponse(out *services.ProfileOutput) ProfileResponse {
	response := ProfileResponse{User: ToUserResponse(out.User)}

	if out.ManagerProfile != nil {
		details := ToEventManagerDetailsResponse(out.ManagerProfile)
		response.ManagerProfile = &details
	}

	return response
}
