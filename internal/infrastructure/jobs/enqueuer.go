package jobs

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// Enqueuer implementa ports.EmailQueue sobre o client River.
// O insert é transacional no Postgres, mas independente da transação da
// requisição: um email enfileirado sobrevive mesmo que a entrega demore.
type Enqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewEnqueuer cria um Enqueuer
func NewEnqueuer(client *river.Client[pgx.Tx]) ports.EmailQueue {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) Enqueue(ctx context.Context, msg ports.EmailMessage) error {
	args := SendEmailArgs{
		Template: msg.Template,
		To:       msg.To,
		Data:     msg.Data,
	}

	_, err := e.client.Insert(ctx, args, &river.InsertOpts{
		MaxAttempts: EmailMaxAttempts,
	})
	return err
}
