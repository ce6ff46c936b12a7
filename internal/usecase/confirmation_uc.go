package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/ports/repository"
	"newsletter-service/internal/infra/metrics"
)

// Compile-time check
var _ ConfirmationUseCase = (*confirmationUC)(nil)

type ConfirmationUseCase interface {
	// Confirm resolves token to a subscriber and flips their status to
	// confirmed. Confirming twice with the same token succeeds; tokens are
	// never invalidated, so an unknown token is indistinguishable from a
	// token that never existed.
	Confirm(ctx context.Context, token string) error
}

type confirmationUC struct {
	subs   repository.SubscriberRepository
	tokens repository.TokenRepository
	log    *zerolog.Logger
}

func NewConfirmationUseCase(
	subs repository.SubscriberRepository,
	tokens repository.TokenRepository,
	logger *zerolog.Logger,
) *confirmationUC {
	return &confirmationUC{subs: subs, tokens: tokens, log: logger}
}

func (uc *confirmationUC) Confirm(ctx context.Context, token string) error {
	if token == "" {
		metrics.IncConfirmation("validation_failed")
		return domain.NewError(domain.KindValidation, "missing subscription token", domain.ErrInvalidArgument)
	}

	subscriberID, err := uc.tokens.FindSubscriberID(ctx, repository.NoTX, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IncConfirmation("unauthorized")
			return domain.NewError(domain.KindUnauthorized, "unknown subscription token", err)
		}
		metrics.IncConfirmation("persistence_failed")
		return domain.NewError(domain.KindPersistence, "failed to look up the subscription token", err)
	}

	if err := uc.subs.Confirm(ctx, repository.NoTX, subscriberID); err != nil {
		metrics.IncConfirmation("persistence_failed")
		return domain.NewError(domain.KindPersistence, "failed to confirm the subscriber", err)
	}

	metrics.IncConfirmation("success")
	uc.log.Info().Str("subscriber_id", subscriberID).Msg("subscriber confirmed")
	return nil
}
