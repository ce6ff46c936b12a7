package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/model"
	"newsletter-service/internal/domain/ports/adapter"
	"newsletter-service/internal/domain/ports/repository"
	"newsletter-service/internal/infra/metrics"
)

// Compile-time check
var _ SubscriptionUseCase = (*subscriptionUC)(nil)

type SubscriptionUseCase interface {
	// Subscribe validates the submitted email/name, persists a pending
	// subscriber together with a fresh confirmation token in one
	// transaction, and then sends the confirmation email. The email is
	// attempted only after the transaction has committed; a send failure
	// leaves the committed rows in place and surfaces as a dispatch error.
	Subscribe(ctx context.Context, rawEmail, rawName string) (*model.Subscriber, error)
}

type subscriptionUC struct {
	subs    repository.SubscriberRepository
	tokens  repository.TokenRepository
	txm     repository.TransactionManager
	sender  adapter.EmailSender
	from    model.Email
	baseURL string
	log     *zerolog.Logger
}

func NewSubscriptionUseCase(
	subs repository.SubscriberRepository,
	tokens repository.TokenRepository,
	txm repository.TransactionManager,
	sender adapter.EmailSender,
	from model.Email,
	baseURL string,
	logger *zerolog.Logger,
) *subscriptionUC {
	return &subscriptionUC{
		subs:    subs,
		tokens:  tokens,
		txm:     txm,
		sender:  sender,
		from:    from,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger,
	}
}

func (uc *subscriptionUC) Subscribe(ctx context.Context, rawEmail, rawName string) (*model.Subscriber, error) {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		metrics.IncSubscription("validation_failed")
		return nil, err
	}
	name, err := model.ParseName(rawName)
	if err != nil {
		metrics.IncSubscription("validation_failed")
		return nil, err
	}

	token, err := model.GenerateToken()
	if err != nil {
		return nil, domain.NewError(domain.KindUnknown, "failed to generate a confirmation token", err)
	}

	sub, err := model.NewSubscriber(email, name)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "invalid subscriber", err)
	}

	// Subscriber first, then its token, both inside one transaction.
	err = uc.txm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		if err := uc.subs.Insert(ctx, tx, sub); err != nil {
			return fmt.Errorf("insert subscriber: %w", err)
		}
		if err := uc.tokens.Insert(ctx, tx, token, sub.ID); err != nil {
			return fmt.Errorf("store subscription token: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.IncSubscription("persistence_failed")
		return nil, domain.NewError(domain.KindPersistence, "failed to store a new subscriber", err)
	}

	if err := uc.sendConfirmationEmail(ctx, sub.Email, token); err != nil {
		// The subscriber and token rows stay committed; only the email failed.
		metrics.IncSubscription("dispatch_failed")
		uc.log.Error().Err(err).Str("subscriber_id", sub.ID).Msg("confirmation email dispatch failed")
		return nil, domain.NewError(domain.KindDispatch, "failed to send a confirmation email", err)
	}

	metrics.IncSubscription("success")
	uc.log.Info().Str("subscriber_id", sub.ID).Msg("new subscriber stored and confirmation email sent")
	return sub, nil
}

func (uc *subscriptionUC) sendConfirmationEmail(ctx context.Context, to model.Email, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", uc.baseURL, token)
	html := fmt.Sprintf(
		`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`, link)
	text := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.", link)

	_, err := uc.sender.Send(ctx, uc.from, to, "Welcome", html, text)
	return err
}
