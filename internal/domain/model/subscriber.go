package model

import (
	"time"

	"github.com/google/uuid"

	"newsletter-service/internal/domain"
)

// SubscriberStatus is the lifecycle state of a subscriber. The only legal
// transition is pending_confirmation -> confirmed.
type SubscriberStatus string

const (
	StatusPendingConfirmation SubscriberStatus = "pending_confirmation"
	StatusConfirmed           SubscriberStatus = "confirmed"
)

// Subscriber is a domain entity for someone who submitted a name/email pair.
// Duplicate emails are allowed; each submission produces a fresh row.
type Subscriber struct {
	ID           string
	Email        Email
	Name         Name
	Status       SubscriberStatus
	SubscribedAt time.Time
}

// NewSubscriber constructs a pending subscriber with a fresh id.
func NewSubscriber(email Email, name Name) (*Subscriber, error) {
	if email.IsZero() || name.IsZero() {
		return nil, domain.ErrInvalidArgument
	}
	return &Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Status:       StatusPendingConfirmation,
		SubscribedAt: time.Now(),
	}, nil
}
