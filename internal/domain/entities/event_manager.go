package entities

import (
	"errors"
	"time"
)

// Gender representa o gênero declarado no perfil profissional
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid verifica se o gênero é um dos valores aceitos
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ServiceTag representa um tipo de serviço oferecido por um event manager
type ServiceTag string

const (
	ServiceWedding     ServiceTag = "wedding"
	ServiceBirthday    ServiceTag = "birthday"
	ServiceCorporate   ServiceTag = "corporate"
	ServiceConcert     ServiceTag = "concert"
	ServiceAnniversary ServiceTag = "anniversary"
	ServiceFestival    ServiceTag = "festival"
)

// IsValid verifica se a tag de serviço é um dos valores aceitos
func (s ServiceTag) IsValid() bool {
	switch s {
	case ServiceWedding, ServiceBirthday, ServiceCorporate,
		ServiceConcert, ServiceAnniversary, ServiceFestival:
		return true
	}
	return false
}

// Limites de idade aceitos no cadastro profissional
const (
	MinManagerAge = 18
	MaxManagerAge = 100
)

// EventManagerDetail é o perfil profissional de um usuário com role eventManager.
// Sempre pertence a exatamente um User.
type EventManagerDetail struct {
	ID          string
	UserID      string
	Gender      Gender
	Age         int
	CategoryIDs []string
	Services    []ServiceTag
	Description string
	WorkImages  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// IsDeleted verifica se o perfil foi deletado (soft delete)
func (d *EventManagerDetail) IsDeleted() bool {
	return d.DeletedAt != nil
}

// Validate valida regras de negócio do perfil profissional
func (d *EventManagerDetail) Validate() error {
	if d.UserID == "" {
		return errors.New("owning user is required")
	}

	if !d.Gender.IsValid() {
		return errors.New("invalid gender")
	}

	if d.Age < MinManagerAge || d.Age > MaxManagerAge {
		return errors.New("age must be between 18 and 100")
	}

	for _, s := range d.Services {
		if !s.IsValid() {
			return errors.New("invalid service tag")
		}
	}

	return nil
}
