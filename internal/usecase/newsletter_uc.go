package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/domain/model"
	"newsletter-service/internal/domain/ports/adapter"
	"newsletter-service/internal/domain/ports/repository"
	"newsletter-service/internal/infra/metrics"
)

// Compile-time check
var _ NewsletterUseCase = (*newsletterUC)(nil)

type NewsletterUseCase interface {
	// Publish sends one newsletter issue to every confirmed subscriber,
	// sequentially, in the store's natural order. Stored emails that no
	// longer parse are skipped with a warning. The first transport failure
	// aborts the remaining sends; the returned count is the number of
	// emails dispatched before the abort. There is no delivery log, so a
	// retry re-sends to every recipient.
	Publish(ctx context.Context, subject, htmlBody, textBody string) (int, error)
}

type newsletterUC struct {
	subs   repository.SubscriberRepository
	sender adapter.EmailSender
	from   model.Email
	log    *zerolog.Logger
}

func NewNewsletterUseCase(
	subs repository.SubscriberRepository,
	sender adapter.EmailSender,
	from model.Email,
	logger *zerolog.Logger,
) *newsletterUC {
	return &newsletterUC{subs: subs, sender: sender, from: from, log: logger}
}

func (uc *newsletterUC) Publish(ctx context.Context, subject, htmlBody, textBody string) (int, error) {
	recipients, err := uc.subs.ListConfirmedEmails(ctx, repository.NoTX)
	if err != nil {
		return 0, domain.NewError(domain.KindPersistence, "failed to list confirmed subscribers", err)
	}

	sent := 0
	for _, r := range recipients {
		email, err := model.ParseEmail(r.Email)
		if err != nil {
			// Stored contact details can drift out of band; tolerate the row.
			uc.log.Warn().Err(err).Str("subscriber_id", r.SubscriberID).
				Msg("skipping a confirmed subscriber, their stored contact details are invalid")
			continue
		}
		if _, err := uc.sender.Send(ctx, uc.from, email, subject, htmlBody, textBody); err != nil {
			metrics.IncNewsletterEmails("failed", 1)
			return sent, domain.NewError(domain.KindDispatch,
				fmt.Sprintf("failed to send newsletter issue to %s", r.Email), err)
		}
		sent++
		metrics.IncNewsletterEmails("sent", 1)
	}

	uc.log.Info().Int("recipients", sent).Msg("newsletter issue published")
	return sent, nil
}
