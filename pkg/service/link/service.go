// Package link provides the merchant-side payment-link service: creation
// through the validator gate, reads with derived status, and the enabled
// toggle.
package link

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/junubipay/paylink/pkg/provider/links"
)

// Service drives the link lifecycle against the store collaborator. The
// clock is injected so expiry checks are deterministic under test.
type Service struct {
	store  links.Store
	logger *slog.Logger
	clock  func() time.Time
}

// New creates a link service. A nil clock defaults to time.Now.
func New(store links.Store, logger *slog.Logger, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, logger: logger, clock: clock}
}

// Create validates the creation form and, on acceptance, persists the draft
// through the store. Validation failures come back as common.FieldErrors;
// they never escalate to a fault.
func (s *Service) Create(ctx context.Context, in link.CreateInput) (*link.PaymentLink, error) {
	now := s.clock().UTC()
	draft, ferrs := link.ValidateCreate(in, now)
	if ferrs != nil {
		s.logger.Info("link creation rejected", "fields", len(ferrs))
		return nil, ferrs
	}

	created, err := s.store.Create(ctx, &link.PaymentLink{
		Title:               draft.Title,
		Description:         draft.Description,
		Amount:              draft.Amount,
		ExpiresAt:           draft.ExpiresAt,
		RedirectURL:         draft.RedirectURL,
		CollectCustomerInfo: draft.CollectCustomerInfo,
		AllowedMethods:      draft.AllowedMethods,
		Enabled:             true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	s.logger.Info("payment link created", "link_id", created.ID, "title", created.Title)
	return created, nil
}

// Get returns the link and its status derived at the current clock reading.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*link.PaymentLink, link.Status, error) {
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get payment link: %w", err)
	}
	return l, l.StatusAt(s.clock().UTC()), nil
}

// List returns all links, newest first.
func (s *Service) List(ctx context.Context) ([]*link.PaymentLink, error) {
	ls, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment links: %w", err)
	}
	return ls, nil
}

// SetEnabled flips the merchant toggle. It is independent of expiry: enabling
// an expired link leaves it expired.
func (s *Service) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*link.PaymentLink, error) {
	l, err := s.store.SetEnabled(ctx, id, enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment link: %w", err)
	}
	s.logger.Info("payment link toggled", "link_id", id, "enabled", enabled)
	return l, nil
}

// StatusOf derives the link's presented status at the current clock reading.
func (s *Service) StatusOf(l *link.PaymentLink) link.Status {
	return l.StatusAt(s.clock().UTC())
}
