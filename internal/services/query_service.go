package services

import (
	"context"
	"time"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
)

// QueryService contém a lógica de negócio para mensagens de contato
type QueryService struct {
	queries  repositories.QueryRepository
	emails   ports.EmailQueue
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewQueryService cria um novo QueryService
func NewQueryService(
	queries repositories.QueryRepository,
	emails ports.EmailQueue,
	notifier ports.Notifier,
	logger ports.Logger,
) *QueryService {
	return &QueryService{
		queries:  queries,
		emails:   emails,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registra uma mensagem do formulário público de contato, enfileira
// o email de confirmação ao remetente e publica o evento para os admins.
func (s *QueryService) Create(ctx context.Context, name, email, message string) (*entities.ContactQuery, error) {
	query := &entities.ContactQuery{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: s.now(),
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := s.queries.Create(ctx, query); err != nil {
		return nil, err
	}

	s.logger.Info("contact query created", "query_id", query.ID)

	if err := s.emails.Enqueue(ctx, ports.EmailMessage{
		Template: ports.EmailTemplateQueryAck,
		To:       email,
		Data: map[string]string{
			"Name": name,
		},
	}); err != nil {
		s.logger.Error("failed to enqueue email",
			"to", email,
			"template", ports.EmailTemplateQueryAck,
			"error", err,
		)
	}

	s.notifier.Broadcast(ports.NotificationQueryCreated, map[string]any{
		"query_id": query.ID,
		"name":     name,
	})

	return query, nil
}

// List retorna as mensagens de contato paginadas (admin)
func (s *QueryService) List(ctx context.Context, page, pageSize int) ([]*entities.ContactQuery, error) {
	return s.queries.List(ctx, page, pageSize)
}
