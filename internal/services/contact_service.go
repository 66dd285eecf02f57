package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"chocolatudo/internal/mailer"
	"chocolatudo/internal/models"
	"chocolatudo/internal/recaptcha"
	"chocolatudo/internal/repositories"
)

// Auto-reply statuses reported to the caller. The auto-reply outcome is
// load-bearing in the response; the business notification is
// fire-and-forget.
const (
	AutoReplySent   = "sent"
	AutoReplyFailed = "failed"
)

const autoReplyMessageSummaryLimit = 100

// ContactConfig carries the email and anti-spam settings of the contact
// workflow.
type ContactConfig struct {
	RecipientEmail     string
	SenderEmail        string
	EmailSubjectPrefix string
	AutoReplySubject   string
	ResponseTimeHours  int
	MinRecaptchaScore  float64
}

// ContactCreateRequest is the deserialized-but-unvalidated contact-form
// payload. Honeypot is a hidden field real users never fill.
type ContactCreateRequest struct {
	NomeCompleto   string `json:"nome_completo" validate:"required,min=3,max=100,full_name"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Telefone       string `json:"telefone" validate:"omitempty,br_phone"`
	Mensagem       string `json:"mensagem" validate:"required,min=10,max=1000"`
	Honeypot       string `json:"honeypot"`
	RecaptchaToken string `json:"recaptcha_token" validate:"required"`
}

// ContactResponse is the confirmation returned for an accepted submission.
type ContactResponse struct {
	Message         string `json:"message"`
	MessageID       int    `json:"messageId"`
	AutoReplyStatus string `json:"autoReplyStatus"`
}

// ContactService handles contact-form submissions: validation, anti-spam
// gating, persistence and dual-channel email notification.
type ContactService struct {
	repo     repositories.ContactRepository
	verifier recaptcha.Verifier
	mail     mailer.Mailer
	cfg      ContactConfig
	validate *validator.Validate
	logger   *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(
	repo repositories.ContactRepository,
	verifier recaptcha.Verifier,
	mail mailer.Mailer,
	cfg ContactConfig,
	validate *validator.Validate,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		repo:     repo,
		verifier: verifier,
		mail:     mail,
		cfg:      cfg,
		validate: validate,
		logger:   logger,
	}
}

// Create processes a contact-form submission. The record is persisted
// unconditionally once validation and both spam gates pass; email
// failures never roll it back. The business-notification email is
// best-effort (logged and swallowed), while an auto-reply failure is
// reflected in the response's AutoReplyStatus.
func (s *ContactService) Create(ctx context.Context, req ContactCreateRequest, ipAddress, userAgent string) (*ContactResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError(fieldErrors(err))
	}

	// A filled honeypot means an automated sender. Reject silently,
	// with no field detail that could tip it off.
	if strings.TrimSpace(req.Honeypot) != "" {
		return nil, newSpamDetected("Invalid request")
	}

	score, err := s.verifier.Verify(ctx, req.RecaptchaToken)
	if err != nil {
		return nil, fmt.Errorf("recaptcha verification failed: %w", err)
	}
	if score < s.cfg.MinRecaptchaScore {
		return nil, newSpamDetected("Não foi possível verificar que você não é um robô. Por favor, tente novamente.")
	}

	now := time.Now().UTC()
	contact := &models.Contact{
		ID:             s.repo.NextID(),
		NomeCompleto:   req.NomeCompleto,
		Email:          req.Email,
		Telefone:       req.Telefone,
		Mensagem:       req.Mensagem,
		Timestamp:      now,
		Status:         models.ContactStatusNew,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		RecaptchaScore: score,
		DateCreated:    now,
		DateModified:   now,
	}

	if err := s.repo.Add(contact); err != nil {
		return nil, fmt.Errorf("failed to store contact: %w", err)
	}

	if err := s.mail.Send(ctx, s.notificationEmail(contact)); err != nil {
		s.logger.Error("failed to send notification email",
			zap.Int("contactId", contact.ID),
			zap.Error(err),
		)
	}

	autoReplyStatus := AutoReplySent
	if err := s.mail.Send(ctx, s.autoReplyEmail(contact)); err != nil {
		s.logger.Error("failed to send auto-reply email",
			zap.Int("contactId", contact.ID),
			zap.String("to", contact.Email),
			zap.Error(err),
		)
		autoReplyStatus = AutoReplyFailed
	}

	return &ContactResponse{
		Message:         "Sua mensagem foi enviada com sucesso! Enviamos uma confirmação para seu email. Entraremos em contato em breve.",
		MessageID:       contact.ID,
		AutoReplyStatus: autoReplyStatus,
	}, nil
}

// notificationEmail composes the business-notification message.
func (s *ContactService) notificationEmail(contact *models.Contact) mailer.Email {
	var body strings.Builder
	body.WriteString("Nova Mensagem de Contato - Chocolatudo\n\n")
	fmt.Fprintf(&body, "Nome: %s\n", contact.NomeCompleto)
	fmt.Fprintf(&body, "Email: %s\n", contact.Email)
	if contact.Telefone != "" {
		fmt.Fprintf(&body, "Telefone: %s\n", contact.Telefone)
	}
	fmt.Fprintf(&body, "Mensagem:\n%s\n\n", contact.Mensagem)
	fmt.Fprintf(&body, "Data/Hora: %s\n", contact.Timestamp.Format(time.RFC3339))

	return mailer.Email{
		To:      s.cfg.RecipientEmail,
		From:    s.cfg.SenderEmail,
		Subject: fmt.Sprintf("%s - %s", s.cfg.EmailSubjectPrefix, contact.NomeCompleto),
		Body:    body.String(),
	}
}

// autoReplyEmail composes the customer confirmation message, echoing a
// truncated copy of the submission.
func (s *ContactService) autoReplyEmail(contact *models.Contact) mailer.Email {
	var body strings.Builder
	body.WriteString("Chocolatudo - Obrigado pelo seu contato!\n\n")
	fmt.Fprintf(&body, "Olá, %s!\n\n", contact.NomeCompleto)
	body.WriteString("Recebemos sua mensagem e agradecemos pelo interesse em nossos produtos.\n\n")
	fmt.Fprintf(&body, "Sua mensagem:\n%s\n\n", truncateMessage(contact.Mensagem, autoReplyMessageSummaryLimit))
	fmt.Fprintf(&body, "Nossa equipe analisará sua solicitação e retornaremos em até %d horas úteis.\n\n", s.cfg.ResponseTimeHours)
	body.WriteString("Outras formas de contato:\n")
	fmt.Fprintf(&body, "Email: %s\n", s.cfg.RecipientEmail)
	body.WriteString("WhatsApp: (11) 99999-9999\n")
	body.WriteString("Endereço: Rua Exemplo, 123 - Bairro - São Paulo/SP\n\n")
	body.WriteString("Chocolatudo - Bolos Artesanais\n")
	body.WriteString("Este é um email automático, por favor não responda.\n")

	return mailer.Email{
		To:      contact.Email,
		From:    s.cfg.SenderEmail,
		Subject: s.cfg.AutoReplySubject,
		Body:    body.String(),
	}
}

// truncateMessage shortens a message to limit runes, appending an
// ellipsis when anything was cut.
func truncateMessage(message string, limit int) string {
	runes := []rune(message)
	if len(runes) <= limit {
		return message
	}
	return string(runes[:limit]) + "..."
}
