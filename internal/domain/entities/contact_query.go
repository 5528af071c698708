package entities

import (
	"errors"
	"time"
)

// ContactQuery é uma mensagem enviada pelo formulário de contato por
// visitantes anônimos; lida apenas por admins.
type ContactQuery struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// Validate valida regras de negócio da mensagem de contato
func (q *ContactQuery) Validate() error {
	if q.Name == "" {
		return errors.New("name is required")
	}

	if q.Email == "" {
		return errors.New("email is required")
	}

	if q.Message == "" {
		return errors.New("message is required")
	}

	if len(q.Message) > 2000 {
		return errors.New("message must be at most 2000 characters")
	}

	return nil
}
