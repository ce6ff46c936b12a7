package repository

import (
	"context"

	"newsletter-service/internal/domain/model"
)

// ConfirmedRecipient is one row of the confirmed-subscriber snapshot. Email
// is the raw stored string; it was validated at insert time but may have been
// altered out of band, so callers re-validate before use.
type ConfirmedRecipient struct {
	SubscriberID string
	Email        string
}

type SubscriberRepository interface {
	// Insert persists a new subscriber row with status pending_confirmation.
	// It performs no duplicate check; re-submitting an email adds a second row.
	Insert(ctx context.Context, tx Tx, s *model.Subscriber) error

	// Confirm sets the subscriber's status to confirmed. Idempotent:
	// confirming an already-confirmed row is not an error.
	Confirm(ctx context.Context, tx Tx, subscriberID string) error

	// ListConfirmedEmails returns a snapshot of all confirmed subscribers in
	// the store's natural order.
	ListConfirmedEmails(ctx context.Context, tx Tx) ([]ConfirmedRecipient, error)
}
