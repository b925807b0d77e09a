// Package links defines the store collaborator the core reads and writes
// payment links through. The core never owns persistence itself.
package links

import (
	"context"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/link"
)

// Store is the payment-link storage collaborator.
type Store interface {
	// Create persists a new link, assigning its id and created-at, and
	// returns the canonical record.
	Create(ctx context.Context, l *link.PaymentLink) (*link.PaymentLink, error)

	// Get returns the link by id, or common.ErrLinkNotFound.
	Get(ctx context.Context, id uuid.UUID) (*link.PaymentLink, error)

	// List returns all links, newest first.
	List(ctx context.Context) ([]*link.PaymentLink, error)

	// SetEnabled flips the merchant toggle and returns the updated record.
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*link.PaymentLink, error)

	// IncrementClicks bumps the link's click counter.
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}

// Reader is the read-only subset the public checkout flow needs.
type Reader interface {
	Get(ctx context.Context, id uuid.UUID) (*link.PaymentLink, error)
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}
