package repositories

import (
	"context"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
)

// EventManagerRepository define a interface para persistência e agregação
// de perfis profissionais de event managers.
type EventManagerRepository interface {
	Create(ctx context.Context, detail *entities.EventManagerDetail) error
	FindByID(ctx context.Context, id string) (*entities.EventManagerDetail, error)
	FindByUserID(ctx context.Context, userID string) (*entities.EventManagerDetail, error)
	Update(ctx context.Context, detail *entities.EventManagerDetail) error
	List(ctx context.Context, page, pageSize int) ([]*EventManagerSummary, error)

	// FullDetailsByID junta o perfil profissional com o usuário dono e todas
	// as avaliações vivas, computando a média das notas (0 sem avaliações).
	FullDetailsByID(ctx context.Context, id string) (*EventManagerFullDetails, error)

	// ListByCategory projeta apenas campos públicos dos event managers cuja
	// lista de categorias contém o id informado (sem dados de contato).
	ListByCategory(ctx context.Context, categoryID string) ([]*EventManagerSummary, error)
}

// ReviewEntry é uma avaliação já juntada com o nome do avaliador
type ReviewEntry struct {
	ID           string
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

// EventManagerFullDetails é o perfil público desnormalizado de um event
// manager: campos do usuário, campos profissionais, avaliações e média.
type EventManagerFullDetails struct {
	ID           string
	UserID       string
	Name         string
	Email        string
	Phone        string
	Address      string
	ProfileImage string

	Gender      entities.Gender
	Age         int
	Description string
	Services    []entities.ServiceTag
	WorkImages  []string
	Categories  []*entities.Category

	Reviews       []*ReviewEntry
	AverageRating float64
}

// EventManagerSummary é a projeção pública mínima de um event manager.
// Deliberadamente sem email e telefone.
type EventManagerSummary struct {
	ID           string
	UserID       string
	Name         string
	Address      string
	ProfileImage string
}
