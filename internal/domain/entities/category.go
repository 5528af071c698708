package entities

import (
	"errors"
	"time"
)

// Category é um nó de taxonomia que agrupa event managers por tema de serviço.
// Criada e mantida apenas por admins.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// IsDeleted verifica se a categoria foi deletada (soft delete)
func (c *Category) IsDeleted() bool {
	return c.DeletedAt != nil
}

// SoftDelete marca a categoria como deletada
func (c *Category) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
}

// Validate valida regras de negócio da categoria
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if len(c.Name) < 2 || len(c.Name) > 100 {
		return errors.New("name must be between 2 and 100 characters")
	}

	return nil
}
