//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/model"
	"newsletter-service/internal/domain/ports/repository"
)

func TestTokenRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	subs := NewSubscriberRepo(testPool)
	tokens := NewTokenRepo(testPool)
	ctx := context.Background()

	t.Run("should store a token and resolve it to its subscriber", func(t *testing.T) {
		cleanup(t)

		sub := mustSubscriber(t, "ursula_le_guin@gmail.com", "le guin")
		if err := subs.Insert(ctx, nil, sub); err != nil {
			t.Fatalf("Insert subscriber failed: %v", err)
		}

		token, err := model.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}
		if err := tokens.Insert(ctx, nil, token, sub.ID); err != nil {
			t.Fatalf("Insert token failed: %v", err)
		}

		subscriberID, err := tokens.FindSubscriberID(ctx, nil, token)
		if err != nil {
			t.Fatalf("FindSubscriberID failed: %v", err)
		}
		if subscriberID != sub.ID {
			t.Errorf("Expected subscriber ID %s, got %s", sub.ID, subscriberID)
		}
	})

	t.Run("should report an unknown token as not found", func(t *testing.T) {
		cleanup(t)

		_, err := tokens.FindSubscriberID(ctx, nil, "mwRkkhcJYSbBNFgjvSmIGCpPY")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Expected domain.ErrNotFound, got %v", err)
		}
	})

	t.Run("should roll back both rows when the token insert fails", func(t *testing.T) {
		cleanup(t)

		txm := NewTxManager(testPool)
		sub := mustSubscriber(t, "rolled_back@example.com", "rolled back")

		err := txm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
			if err := subs.Insert(ctx, tx, sub); err != nil {
				return err
			}
			// A subscriber_id that violates the FK forces a rollback.
			return tokens.Insert(ctx, tx, "mwRkkhcJYSbBNFgjvSmIGCpPY", "00000000-0000-0000-0000-000000000000")
		})
		if err == nil {
			t.Fatal("Expected the transaction to fail, but it succeeded")
		}

		// Neither row may survive.
		var count int
		if err := testPool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&count); err != nil {
			t.Fatalf("Count subscriptions failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected 0 subscription rows after rollback, got %d", count)
		}
		if err := testPool.QueryRow(ctx, `SELECT COUNT(*) FROM subscription_tokens`).Scan(&count); err != nil {
			t.Fatalf("Count tokens failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected 0 token rows after rollback, got %d", count)
		}
	})
}
