package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/ports/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

type TokenRepo struct {
	pool *pgxpool.Pool
}

func NewTokenRepo(pool *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

func (r *TokenRepo) Insert(ctx context.Context, tx repository.Tx, token, subscriberID string) error {
	const q = `
INSERT INTO subscription_tokens (subscription_token, subscriber_id)
VALUES ($1, $2);
`
	ex, err := getExecutor(r.pool, tx)
	if err != nil {
		return err
	}
	if _, err := ex.Exec(ctx, q, token, subscriberID); err != nil {
		return fmt.Errorf("insert subscription token: %w", err)
	}
	return nil
}

func (r *TokenRepo) FindSubscriberID(ctx context.Context, tx repository.Tx, token string) (string, error) {
	const q = `SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1;`
	ex, err := getExecutor(r.pool, tx)
	if err != nil {
		return "", err
	}
	var subscriberID string
	if err := ex.QueryRow(ctx, q, token).Scan(&subscriberID); err != nil {
		if err == pgx.ErrNoRows {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("find subscription token: %w", err)
	}
	return subscriberID, nil
}
