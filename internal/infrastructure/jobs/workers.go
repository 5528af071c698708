package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// SendEmailArgs são os argumentos do job de entrega de email
type SendEmailArgs struct {
	Template string            `json:"template"`
	To       string            `json:"to"`
	Data     map[string]string `json:"data"`
}

func (SendEmailArgs) Kind() string { return JobKindEmailSend }

// SendEmailWorker entrega emails enfileirados. Falhas retornam erro e o
// River reagenda conforme a RetryPolicy; esgotadas as tentativas o job morre
// e fica registrado no log de erros.
type SendEmailWorker struct {
	river.WorkerDefaults[SendEmailArgs]
	Sender ports.EmailSender
	Logger ports.Logger
}

func (w *SendEmailWorker) Work(ctx context.Context, job *river.Job[SendEmailArgs]) error {
	if w.Sender == nil {
		return fmt.Errorf("email sender not configured")
	}

	msg := ports.EmailMessage{
		Template: job.Args.Template,
		To:       job.Args.To,
		Data:     job.Args.Data,
	}

	if err := w.Sender.Send(ctx, msg); err != nil {
		w.Logger.Warn("email delivery failed, will retry",
			"to", job.Args.To,
			"template", job.Args.Template,
			"attempt", job.Attempt,
			"error", err,
		)
		return err
	}

	return nil
}

// NewWorkers registra todos os workers da aplicação
func NewWorkers(sender ports.EmailSender, logger ports.Logger) (*river.Workers, error) {
	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, &SendEmailWorker{Sender: sender, Logger: logger}); err != nil {
		return nil, err
	}
	return workers, nil
}
