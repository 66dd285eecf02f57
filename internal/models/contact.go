package models

import "time"

// ContactStatus tracks how a contact message has been handled.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Contact represents a submitted contact-form message.
type Contact struct {
	ID             int           `json:"id"`
	NomeCompleto   string        `json:"nomeCompleto"`
	Email          string        `json:"email"`
	Telefone       string        `json:"telefone,omitempty"`
	Mensagem       string        `json:"mensagem"`
	Timestamp      time.Time     `json:"timestamp"`
	Status         ContactStatus `json:"status"`
	IPAddress      string        `json:"ipAddress"`
	UserAgent      string        `json:"userAgent"`
	RecaptchaScore float64       `json:"recaptchaScore"`
	DateCreated    time.Time     `json:"dateCreated"`
	DateModified   time.Time     `json:"dateModified"`
}
