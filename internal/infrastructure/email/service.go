package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/mail"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/infrastructure/config"
)

// Service entrega emails transacionais via Resend.
// Implementa ports.EmailSender; é consumido exclusivamente pelo worker da
// fila de jobs, nunca pelo caminho da requisição.
type Service struct {
	client    *resend.Client
	config    config.EmailConfig
	templates *template.Template
	logger    ports.Logger
}

// NewService cria o serviço de email
func NewService(cfg config.EmailConfig, logger ports.Logger) (*Service, error) {
	if cfg.Enabled {
		if err := validateAddress(cfg.From); err != nil {
			return nil, fmt.Errorf("invalid sender email in config: %w", err)
		}
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required when email is enabled")
		}
	}

	templates, err := template.New("email").Parse(templateSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	var client *resend.Client
	if cfg.Enabled {
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	return &Service{
		client:    client,
		config:    cfg,
		templates: templates,
		logger:    logger.With("component", "email"),
	}, nil
}

var _ ports.EmailSender = (*Service)(nil)

// Send renderiza o template da mensagem e a entrega via Resend
func (s *Service) Send(ctx context.Context, msg ports.EmailMessage) error {
	if err := validateAddress(msg.To); err != nil {
		return fmt.Errorf("invalid recipient email: %w", err)
	}

	subject, tmplName, err := resolveTemplate(msg.Template)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, tmplName, msg.Data); err != nil {
		return fmt.Errorf("failed to render email template %s: %w", tmplName, err)
	}

	// Com email desabilitado apenas loga; útil em desenvolvimento
	if !s.config.Enabled {
		s.logger.Info("email disabled, skipping delivery",
			"to", msg.To,
			"template", msg.Template,
		)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.config.From,
		To:      []string{msg.To},
		Subject: subject,
		Html:    body.String(),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend API error: %w", err)
	}

	s.logger.Info("email delivered",
		"email_id", sent.Id,
		"to", msg.To,
		"template", msg.Template,
	)
	return nil
}

// resolveTemplate mapeia o tipo da mensagem para assunto e template
func resolveTemplate(kind string) (subject, tmplName string, err error) {
	switch kind {
	case ports.EmailTemplateVerification:
		return "Eventra - Verify your email", "verification", nil
	case ports.EmailTemplatePasswordReset:
		return "Eventra - Reset your password", "password_reset", nil
	case ports.EmailTemplateQueryAck:
		return "Eventra - We received your message", "query_ack", nil
	default:
		return "", "", fmt.Errorf("unknown email template %q", kind)
	}
}

// validateAddress valida formato e tentativa de header injection
func validateAddress(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}

	if strings.ContainsAny(addr.Address, "\r\n") {
		return fmt.Errorf("email address contains newline characters")
	}

	return nil
}
