package repository

import "context"

type TokenRepository interface {
	// Insert binds token to a subscriber. Tokens are write-once: they are
	// never updated, invalidated, or deleted, and a subscriber may hold more
	// than one live token.
	Insert(ctx context.Context, tx Tx, token, subscriberID string) error

	// FindSubscriberID resolves token to the subscriber it authorizes.
	// Returns domain.ErrNotFound for an unknown token. Never mutates.
	FindSubscriberID(ctx context.Context, tx Tx, token string) (string, error)
}
