package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo padrão do bcrypt
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash gera o hash bcrypt da senha
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifica a senha contra o hash armazenado
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
