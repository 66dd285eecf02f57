// Package mailer defines the outbound email capability used by the
// contact workflow. The domain service only depends on the Send contract;
// delivery itself is swappable (log, SMTP, or queue-backed).
package mailer

import (
	"context"

	"go.uber.org/zap"
)

// Email is a single outbound message.
type Email struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer sends emails. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LogMailer logs outbound emails instead of delivering them. Default in
// development, where no SMTP server or broker is configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the email and reports success.
func (m *LogMailer) Send(_ context.Context, email Email) error {
	m.logger.Info("sending email",
		zap.String("to", email.To),
		zap.String("from", email.From),
		zap.String("subject", email.Subject),
	)
	return nil
}
