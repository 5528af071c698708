package ports

import "context"

// Templates de email conhecidos pelo serviço de envio
const (
	EmailTemplateVerification  = "verification"
	EmailTemplatePasswordReset = "password_reset"
	EmailTemplateQueryAck      = "query_ack"
)

// EmailMessage descreve um email a ser entregue de forma assíncrona
type EmailMessage struct {
	Template string
	To       string
	Data     map[string]string
}

// EmailQueue enfileira emails para entrega fora do ciclo request/response.
// Falhas de entrega são tratadas pelo worker (retry com backoff) e nunca
// revertem a mutação que originou o envio.
type EmailQueue interface {
	Enqueue(ctx context.Context, msg EmailMessage) error
}

// EmailSender entrega um email imediatamente; usado pelo worker da fila
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
