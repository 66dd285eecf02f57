package services_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"chocolatudo/internal/mailer"
	"chocolatudo/internal/models"
	"chocolatudo/internal/repositories"
	"chocolatudo/internal/services"
)

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, email mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockVerifier is a mock implementation of recaptcha.Verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) (float64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(float64), args.Error(1)
}

func contactConfig() services.ContactConfig {
	return services.ContactConfig{
		RecipientEmail:     "contato@chocolatudo.com.br",
		SenderEmail:        "noreply@chocolatudo.com.br",
		EmailSubjectPrefix: "Contato Chocolatudo",
		AutoReplySubject:   "Recebemos sua mensagem - Chocolatudo",
		ResponseTimeHours:  24,
		MinRecaptchaScore:  0.5,
	}
}

func validContactRequest() services.ContactCreateRequest {
	return services.ContactCreateRequest{
		NomeCompleto:   "João Silva",
		Email:          "joao@example.com",
		Telefone:       "(11) 99999-9999",
		Mensagem:       "Gostaria de saber mais sobre os bolos",
		RecaptchaToken: "token123",
	}
}

func toBusiness(email mailer.Email) bool { return email.To == "contato@chocolatudo.com.br" }
func toCustomer(email mailer.Email) bool { return email.To == "joao@example.com" }

func newContactFixture(t *testing.T) (*services.ContactService, *repositories.MemoryContactRepository, *MockVerifier, *MockMailer) {
	t.Helper()
	repo := repositories.NewMemoryContactRepository()
	verifier := new(MockVerifier)
	mail := new(MockMailer)
	service := services.NewContactService(repo, verifier, mail, contactConfig(), services.NewValidator(), zap.NewNop())
	return service, repo, verifier, mail
}

func TestContactService_Create(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	verifier.On("Verify", mock.Anything, "token123").Return(0.9, nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toBusiness)).Return(nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toCustomer)).Return(nil).Once()

	resp, err := service.Create(context.Background(), validContactRequest(), "192.168.1.1", "Mozilla/5.0")
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.MessageID)
	assert.Equal(t, services.AutoReplySent, resp.AutoReplyStatus)
	assert.Contains(t, resp.Message, "enviada com sucesso")

	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "João Silva", stored.NomeCompleto)
	assert.Equal(t, models.ContactStatusNew, stored.Status)
	assert.Equal(t, "192.168.1.1", stored.IPAddress)
	assert.Equal(t, "Mozilla/5.0", stored.UserAgent)
	assert.Equal(t, 0.9, stored.RecaptchaScore)

	verifier.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestContactService_Create_ValidationError(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	cases := []struct {
		name   string
		mutate func(*services.ContactCreateRequest)
	}{
		{"short name", func(r *services.ContactCreateRequest) { r.NomeCompleto = "Jo" }},
		{"name with digits", func(r *services.ContactCreateRequest) { r.NomeCompleto = "Joao123" }},
		{"bad email", func(r *services.ContactCreateRequest) { r.Email = "not-an-email" }},
		{"bad phone", func(r *services.ContactCreateRequest) { r.Telefone = "12345" }},
		{"short message", func(r *services.ContactCreateRequest) { r.Mensagem = "curta" }},
		{"missing token", func(r *services.ContactCreateRequest) { r.RecaptchaToken = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validContactRequest()
			tc.mutate(&req)

			resp, err := service.Create(context.Background(), req, "ip", "ua")
			assert.Nil(t, resp)
			svcErr, ok := services.AsServiceError(err)
			assert.True(t, ok)
			assert.Equal(t, services.CodeValidationError, svcErr.Code)
			assert.NotEmpty(t, svcErr.Details)
		})
	}

	assert.Equal(t, 0, repo.Count())
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactService_Create_HoneypotRejectedSilently(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	req := validContactRequest()
	req.Honeypot = "http://spam.example.com"

	resp, err := service.Create(context.Background(), req, "ip", "ua")
	assert.Nil(t, resp)
	svcErr, ok := services.AsServiceError(err)
	assert.True(t, ok)
	assert.Equal(t, services.CodeSpamDetected, svcErr.Code)

	// Silent rejection: generic message, no field detail, nothing stored,
	// no id consumed, no outbound calls.
	assert.Equal(t, "Invalid request", svcErr.Message)
	assert.Empty(t, svcErr.Details)
	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 1, repo.NextID())
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactService_Create_LowRecaptchaScore(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	verifier.On("Verify", mock.Anything, "token123").Return(0.2, nil).Once()

	resp, err := service.Create(context.Background(), validContactRequest(), "ip", "ua")
	assert.Nil(t, resp)
	svcErr, ok := services.AsServiceError(err)
	assert.True(t, ok)
	assert.Equal(t, services.CodeSpamDetected, svcErr.Code)
	assert.Contains(t, svcErr.Message, "robô")

	assert.Equal(t, 0, repo.Count())
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	verifier.AssertExpectations(t)
}

func TestContactService_Create_VerifierFailureIsGenericFault(t *testing.T) {
	service, repo, verifier, _ := newContactFixture(t)

	verifier.On("Verify", mock.Anything, "token123").Return(0.0, fmt.Errorf("siteverify timeout")).Once()

	resp, err := service.Create(context.Background(), validContactRequest(), "ip", "ua")
	assert.Nil(t, resp)
	assert.Error(t, err)
	_, ok := services.AsServiceError(err)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.Count())
}

func TestContactService_Create_NotificationFailureSwallowed(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	verifier.On("Verify", mock.Anything, "token123").Return(0.9, nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toBusiness)).Return(fmt.Errorf("smtp down")).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toCustomer)).Return(nil).Once()

	resp, err := service.Create(context.Background(), validContactRequest(), "ip", "ua")
	assert.NoError(t, err)
	assert.Equal(t, services.AutoReplySent, resp.AutoReplyStatus)
	assert.Equal(t, 1, repo.Count())
	mail.AssertExpectations(t)
}

func TestContactService_Create_AutoReplyFailureReflectedInStatus(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	verifier.On("Verify", mock.Anything, "token123").Return(0.9, nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toBusiness)).Return(nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toCustomer)).Return(fmt.Errorf("mailbox full")).Once()

	resp, err := service.Create(context.Background(), validContactRequest(), "ip", "ua")
	assert.NoError(t, err)
	assert.Equal(t, services.AutoReplyFailed, resp.AutoReplyStatus)

	// The record survives the delivery failure and is retrievable.
	stored, err := repo.GetByID(resp.MessageID)
	assert.NoError(t, err)
	assert.Equal(t, "João Silva", stored.NomeCompleto)
	mail.AssertExpectations(t)
}

func TestContactService_Create_AutoReplyTruncatesLongMessage(t *testing.T) {
	service, _, verifier, mail := newContactFixture(t)

	longMessage := ""
	for i := 0; i < 30; i++ {
		longMessage += "bolo "
	}
	req := validContactRequest()
	req.Mensagem = longMessage

	truncated := string([]rune(longMessage)[:100]) + "..."

	verifier.On("Verify", mock.Anything, "token123").Return(0.9, nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(toBusiness)).Return(nil).Once()
	mail.On("Send", mock.Anything, mock.MatchedBy(func(email mailer.Email) bool {
		// The echoed copy is cut at 100 runes plus an ellipsis.
		return toCustomer(email) &&
			strings.Contains(email.Body, truncated) &&
			!strings.Contains(email.Body, longMessage)
	})).Return(nil).Once()

	_, err := service.Create(context.Background(), req, "ip", "ua")
	assert.NoError(t, err)
	mail.AssertExpectations(t)
}

func TestContactService_Create_ConcurrentSubmissionsGetUniqueIDs(t *testing.T) {
	service, repo, verifier, mail := newContactFixture(t)

	const submissions = 20
	verifier.On("Verify", mock.Anything, "token123").Return(0.9, nil).Times(submissions)
	mail.On("Send", mock.Anything, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	ids := make(chan int, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := service.Create(context.Background(), validContactRequest(), "ip", "ua")
			assert.NoError(t, err)
			ids <- resp.MessageID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, submissions)
	for id := 1; id <= submissions; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
	assert.Equal(t, submissions, repo.Count())
}
