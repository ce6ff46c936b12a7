package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"newsletter-service/internal/domain/model"
	"newsletter-service/internal/domain/ports/repository"
)

var _ repository.SubscriberRepository = (*SubscriberRepo)(nil)

type SubscriberRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepo(pool *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{pool: pool}
}

// Insert always writes status pending_confirmation and never checks for an
// existing row with the same email; duplicates are an accepted contract.
func (r *SubscriberRepo) Insert(ctx context.Context, tx repository.Tx, s *model.Subscriber) error {
	const q = `
INSERT INTO subscriptions (id, email, name, status, subscribed_at)
VALUES ($1, $2, $3, $4, $5);
`
	ex, err := getExecutor(r.pool, tx)
	if err != nil {
		return err
	}
	if _, err := ex.Exec(ctx, q, s.ID, s.Email.String(), s.Name.String(), string(model.StatusPendingConfirmation), s.SubscribedAt); err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// Confirm is an idempotent status set; updating an already-confirmed row
// matches zero-or-one rows and either way is a success.
func (r *SubscriberRepo) Confirm(ctx context.Context, tx repository.Tx, subscriberID string) error {
	const q = `UPDATE subscriptions SET status = $1 WHERE id = $2;`
	ex, err := getExecutor(r.pool, tx)
	if err != nil {
		return err
	}
	if _, err := ex.Exec(ctx, q, string(model.StatusConfirmed), subscriberID); err != nil {
		return fmt.Errorf("confirm subscription: %w", err)
	}
	return nil
}

func (r *SubscriberRepo) ListConfirmedEmails(ctx context.Context, tx repository.Tx) ([]repository.ConfirmedRecipient, error) {
	const q = `SELECT id, email FROM subscriptions WHERE status = $1;`
	ex, err := getExecutor(r.pool, tx)
	if err != nil {
		return nil, err
	}
	rows, err := ex.Query(ctx, q, string(model.StatusConfirmed))
	if err != nil {
		return nil, fmt.Errorf("list confirmed subscriptions: %w", err)
	}
	defer rows.Close()

	var out []repository.ConfirmedRecipient
	for rows.Next() {
		var rec repository.ConfirmedRecipient
		if err := rows.Scan(&rec.SubscriberID, &rec.Email); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
