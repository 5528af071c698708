package entities

import (
	"errors"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

// Janelas de validade dos tokens de curta duração
const (
	VerificationTokenTTL  = 5 * time.Minute
	PasswordResetTokenTTL = 15 * time.Minute
)

// User representa um usuário da plataforma (cliente, admin ou event manager)
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	Phone        valueobjects.Phone
	Address      string
	ProfileImage string
	PasswordHash string
	Role         Role

	// OTP gerado no cadastro de event manager (mantido por compatibilidade;
	// nenhum fluxo de verificação o consome)
	OTP          string
	OTPCreatedAt *time.Time

	// Token de verificação de email, válido por VerificationTokenTTL
	VerifyToken          string
	VerifyTokenCreatedAt *time.Time

	// Token de redefinição de senha, válido por PasswordResetTokenTTL
	ResetToken          string
	ResetTokenCreatedAt *time.Time

	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEventManager verifica se o usuário é event manager
func (u *User) IsEventManager() bool {
	return u.Role == RoleEventManager
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// VerificationExpired informa se o token de verificação de email expirou.
// Um usuário sem token pendente conta como expirado.
func (u *User) VerificationExpired(now time.Time) bool {
	if u.VerifyToken == "" || u.VerifyTokenCreatedAt == nil {
		return true
	}
	return now.Sub(*u.VerifyTokenCreatedAt) > VerificationTokenTTL
}

// ResetExpired informa se o token de redefinição de senha expirou
func (u *User) ResetExpired(now time.Time) bool {
	if u.ResetToken == "" || u.ResetTokenCreatedAt == nil {
		return true
	}
	return now.Sub(*u.ResetTokenCreatedAt) > PasswordResetTokenTTL
}

// ClearVerification limpa o token de verificação pendente
func (u *User) ClearVerification() {
	u.VerifyToken = ""
	u.VerifyTokenCreatedAt = nil
}

// ClearReset limpa o token de redefinição pendente
func (u *User) ClearReset() {
	u.ResetToken = ""
	u.ResetTokenCreatedAt = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	return nil
}
