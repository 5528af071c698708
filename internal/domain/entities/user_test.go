package entities

import (
	"testing"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

func testUser(t *testing.T) *User {
	t.Helper()

	email, err := valueobjects.NewEmail("maria@example.com")
	if err != nil {
		t.Fatalf("email inválido no setup: %v", err)
	}

	return &User{
		ID:    "user-1",
		Name:  "Maria Silva",
		Email: email,
		Role:  RoleUser,
	}
}

func TestUserVerificationExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("token dentro da janela não expirou", func(t *testing.T) {
		issued := now.Add(-VerificationTokenTTL + time.Second)
		u := testUser(t)
		u.VerifyToken = "abc"
		u.VerifyTokenCreatedAt = &issued

		if u.VerificationExpired(now) {
			t.Error("token dentro da janela não deveria expirar")
		}
	})

	t.Run("token além da janela expirou", func(t *testing.T) {
		issued := now.Add(-VerificationTokenTTL - time.Second)
		u := testUser(t)
		u.VerifyToken = "abc"
		u.VerifyTokenCreatedAt = &issued

		if !u.VerificationExpired(now) {
			t.Error("token além da janela deveria expirar")
		}
	})

	t.Run("sem token pendente conta como expirado", func(t *testing.T) {
		u := testUser(t)
		if !u.VerificationExpired(now) {
			t.Error("usuário sem token deveria contar como expirado")
		}
	})
}

func TestUserResetExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("janela de reset é maior que a de verificação", func(t *testing.T) {
		issued := now.Add(-10 * time.Minute)
		u := testUser(t)
		u.ResetToken = "abc"
		u.ResetTokenCreatedAt = &issued

		if u.ResetExpired(now) {
			t.Error("token de 10 minutos ainda deveria valer")
		}
	})

	t.Run("token além de 15 minutos expirou", func(t *testing.T) {
		issued := now.Add(-PasswordResetTokenTTL - time.Second)
		u := testUser(t)
		u.ResetToken = "abc"
		u.ResetTokenCreatedAt = &issued

		if !u.ResetExpired(now) {
			t.Error("token além da janela deveria expirar")
		}
	})
}

func TestUserClearTokens(t *testing.T) {
	now := time.Now()
	u := testUser(t)
	u.VerifyToken = "v"
	u.VerifyTokenCreatedAt = &now
	u.ResetToken = "r"
	u.ResetTokenCreatedAt = &now

	u.ClearVerification()
	if u.VerifyToken != "" || u.VerifyTokenCreatedAt != nil {
		t.Error("ClearVerification deveria limpar token e timestamp")
	}

	u.ClearReset()
	if u.ResetToken != "" || u.ResetTokenCreatedAt != nil {
		t.Error("ClearReset deveria limpar token e timestamp")
	}
}

func TestUserSoftDelete(t *testing.T) {
	u := testUser(t)
	if u.IsDeleted() {
		t.Error("usuário novo não deveria estar deletado")
	}

	u.SoftDelete()
	if !u.IsDeleted() {
		t.Error("SoftDelete deveria marcar o usuário")
	}

	u.Restore()
	if u.IsDeleted() {
		t.Error("Restore deveria desmarcar o usuário")
	}
}

func TestUserValidate(t *testing.T) {
	t.Run("usuário válido passa", func(t *testing.T) {
		if err := testUser(t).Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("nome curto é rejeitado", func(t *testing.T) {
		u := testUser(t)
		u.Name = "A"
		if err := u.Validate(); err == nil {
			t.Error("esperado erro com nome de 1 caractere")
		}
	})

	t.Run("role inválido é rejeitado", func(t *testing.T) {
		u := testUser(t)
		u.Role = Role("superadmin")
		if err := u.Validate(); err != ErrInvalidRole {
			t.Errorf("esperado ErrInvalidRole, obtido %v", err)
		}
	})
}
