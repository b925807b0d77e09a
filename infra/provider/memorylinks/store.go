// Package memorylinks is an in-memory implementation of the payment-link
// store collaborator, used by tests, the CLI demo and local development.
package memorylinks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/common"
	"github.com/junubipay/paylink/pkg/domain/link"
)

// Store holds payment links in a map guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	links map[uuid.UUID]*link.PaymentLink
	clock func() time.Time
}

// New creates an empty store. A nil clock defaults to time.Now.
func New(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		links: make(map[uuid.UUID]*link.PaymentLink),
		clock: clock,
	}
}

// Create assigns the link's id and created-at and stores a copy.
func (s *Store) Create(ctx context.Context, l *link.PaymentLink) (*link.PaymentLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *l
	stored.ID = uuid.New()
	stored.CreatedAt = s.clock().UTC()
	stored.ClickCount = 0
	s.links[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Get returns a copy of the link, or common.ErrLinkNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*link.PaymentLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.links[id]
	if !ok {
		return nil, common.ErrLinkNotFound
	}
	out := *l
	return &out, nil
}

// List returns copies of all links, newest first.
func (s *Store) List(ctx context.Context) ([]*link.PaymentLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*link.PaymentLink, 0, len(s.links))
	for _, l := range s.links {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// SetEnabled flips the merchant toggle and returns the updated record.
func (s *Store) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*link.PaymentLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return nil, common.ErrLinkNotFound
	}
	l.Enabled = enabled
	out := *l
	return &out, nil
}

// IncrementClicks bumps the link's click counter.
func (s *Store) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return common.ErrLinkNotFound
	}
	l.ClickCount++
	return nil
}
