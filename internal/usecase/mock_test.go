//go:build !integration

package usecase_test

import (
	"context"
	"io"
	"sync"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/model"
	"newsletter-service/internal/domain/ports/adapter"
	"newsletter-service/internal/domain/ports/repository"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

// =============================
// Repositories
// =============================

// ---- Mock SubscriberRepository ----

type MockSubscriberRepo struct {
	mu        sync.Mutex
	Inserted  []*model.Subscriber
	Confirmed []string

	InsertFunc              func(ctx context.Context, tx repository.Tx, s *model.Subscriber) error
	ConfirmFunc             func(ctx context.Context, tx repository.Tx, subscriberID string) error
	ListConfirmedEmailsFunc func(ctx context.Context, tx repository.Tx) ([]repository.ConfirmedRecipient, error)
}

var _ repository.SubscriberRepository = (*MockSubscriberRepo)(nil)

func NewMockSubscriberRepo() *MockSubscriberRepo { return &MockSubscriberRepo{} }

func (m *MockSubscriberRepo) Insert(ctx context.Context, tx repository.Tx, s *model.Subscriber) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inserted = append(m.Inserted, s)
	return nil
}

func (m *MockSubscriberRepo) Confirm(ctx context.Context, tx repository.Tx, subscriberID string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, tx, subscriberID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Confirmed = append(m.Confirmed, subscriberID)
	return nil
}

func (m *MockSubscriberRepo) ListConfirmedEmails(ctx context.Context, tx repository.Tx) ([]repository.ConfirmedRecipient, error) {
	if m.ListConfirmedEmailsFunc != nil {
		return m.ListConfirmedEmailsFunc(ctx, tx)
	}
	return nil, nil
}

// ---- Mock TokenRepository ----

type MockTokenRepo struct {
	mu       sync.Mutex
	Inserted map[string]string // token -> subscriber id

	InsertFunc           func(ctx context.Context, tx repository.Tx, token, subscriberID string) error
	FindSubscriberIDFunc func(ctx context.Context, tx repository.Tx, token string) (string, error)
}

var _ repository.TokenRepository = (*MockTokenRepo)(nil)

func NewMockTokenRepo() *MockTokenRepo {
	return &MockTokenRepo{Inserted: map[string]string{}}
}

func (m *MockTokenRepo) Insert(ctx context.Context, tx repository.Tx, token, subscriberID string) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, token, subscriberID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inserted[token] = subscriberID
	return nil
}

func (m *MockTokenRepo) FindSubscriberID(ctx context.Context, tx repository.Tx, token string) (string, error) {
	if m.FindSubscriberIDFunc != nil {
		return m.FindSubscriberIDFunc(ctx, tx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.Inserted[token]; ok {
		return id, nil
	}
	return "", domain.ErrNotFound
}

// ---- Mock TransactionManager ----

type MockTxManager struct {
	WithTxFunc func(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error
}

var _ repository.TransactionManager = (*MockTxManager)(nil)

func NewMockTxManager() *MockTxManager { return &MockTxManager{} }

// WithTx runs fn immediately with NoTX unless a custom WithTxFunc is set.
func (m *MockTxManager) WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, txOpt, fn)
	}
	return fn(ctx, repository.NoTX)
}

// =============================
// Adapters
// =============================

// ---- Mock EmailSender ----

type SentEmail struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type MockEmailSender struct {
	mu   sync.Mutex
	Sent []SentEmail

	SendFunc func(ctx context.Context, from, to model.Email, subject, htmlBody, textBody string) (string, error)
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)

func NewMockEmailSender() *MockEmailSender { return &MockEmailSender{} }

func (m *MockEmailSender) Send(ctx context.Context, from, to model.Email, subject, htmlBody, textBody string) (string, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, from, to, subject, htmlBody, textBody)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentEmail{
		From:     from.String(),
		To:       to.String(),
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	return "mock-message-id", nil
}

func (m *MockEmailSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

func mustEmail(raw string) model.Email {
	e, err := model.ParseEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}
