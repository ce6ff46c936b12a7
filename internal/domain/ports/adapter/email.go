package adapter

import (
	"context"

	"newsletter-service/internal/domain/model"
)

// EmailSender delivers a single email through an external transport. The
// returned string is the transport's delivery/message id, when it has one.
// Implementations own their retry and timeout policy; callers treat every
// error uniformly as a dispatch failure.
type EmailSender interface {
	Send(ctx context.Context, from, to model.Email, subject, htmlBody, textBody string) (string, error)
}
