// Package checkout holds the customer-facing checkout domain: the session
// state machine and the customer-field validator.
package checkout

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/common"
	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/shopspring/decimal"
)

// State is the tagged state of a checkout session. Transitions through the
// table below are the only way a session changes state, so contradictory
// flag combinations cannot exist.
type State string

const (
	// StateResolving is the initial state: the link is being fetched.
	StateResolving State = "resolving"
	// StateAwaitingInput means the link resolved active and the customer is
	// editing fields.
	StateAwaitingInput State = "awaiting_input"
	// StateSubmitting means exactly one initiate-payment call is in flight.
	StateSubmitting State = "submitting"
	// StatePending is terminal: the provider accepted the payment but has not
	// confirmed it yet. The core does not poll.
	StatePending State = "pending"
	// StateSucceeded is terminal: the provider confirmed the payment.
	StateSucceeded State = "succeeded"
	// StateFailed means the provider rejected the payment or the call failed.
	// The customer may retry from here with fields preserved.
	StateFailed State = "failed"
	// StateUnavailable is terminal: the link was expired, disabled or not
	// found. The session must be discarded.
	StateUnavailable State = "unavailable"
)

// allowedTransitions is keyed by current state; the value lists the states
// reachable from it. Failed -> AwaitingInput is the only backward edge.
var allowedTransitions = map[State][]State{
	StateResolving:     {StateAwaitingInput, StateUnavailable},
	StateAwaitingInput: {StateSubmitting},
	StateSubmitting:    {StatePending, StateSucceeded, StateFailed},
	StateFailed:        {StateAwaitingInput},
	StatePending:       {},
	StateSucceeded:     {},
	StateUnavailable:   {},
}

// CanTransition reports whether the machine permits moving from one state to
// another.
func CanTransition(from, to State) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves the state.
func (s State) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Session is one customer's ephemeral checkout flow for a single link. It is
// owned exclusively by the context that created it and is not safe for
// concurrent use; the two suspension points (resolve, submit) are guarded by
// the generation counter so a result arriving after Close is discarded
// instead of being applied to a stale session.
type Session struct {
	id            uuid.UUID
	state         State
	link          *link.PaymentLink
	linkStatus    link.Status
	customer      Customer
	amount        decimal.Decimal
	method        link.PaymentMethod
	transactionID string
	failure       string
	reason        string
	gen           uint64
	closed        bool
}

// NewSession creates a session in the Resolving state.
func NewSession() *Session {
	return &Session{id: uuid.New(), state: StateResolving}
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Link returns the resolved link, nil before AttachLink.
func (s *Session) Link() *link.PaymentLink { return s.link }

// LinkStatus returns the status the link had when it was resolved.
func (s *Session) LinkStatus() link.Status { return s.linkStatus }

// Customer returns the fields captured by the last submission attempt.
func (s *Session) Customer() Customer { return s.customer }

// Amount returns the amount charged by the last submission attempt.
func (s *Session) Amount() decimal.Decimal { return s.amount }

// SelectedMethod returns the currently selected payment method.
func (s *Session) SelectedMethod() link.PaymentMethod { return s.method }

// TransactionID returns the provider transaction id once Pending or Succeeded.
func (s *Session) TransactionID() string { return s.transactionID }

// Failure returns the message carried by the Failed state.
func (s *Session) Failure() string { return s.failure }

// UnavailableReason returns the message carried by the Unavailable state.
func (s *Session) UnavailableReason() string { return s.reason }

// Generation returns the liveness token callers must capture before a
// suspension point and present again when applying its result.
func (s *Session) Generation() uint64 { return s.gen }

// Alive reports whether a result captured at generation gen may still be
// applied to this session.
func (s *Session) Alive(gen uint64) bool {
	return !s.closed && s.gen == gen
}

// Close tears the session down. Any in-flight result presented with an older
// generation is discarded afterwards.
func (s *Session) Close() {
	s.closed = true
	s.gen++
}

func (s *Session) transition(to State) error {
	if s.closed {
		return common.ErrSessionClosed
	}
	if !CanTransition(s.state, to) {
		return fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, s.state, to)
	}
	s.state = to
	return nil
}

// AttachLink applies the outcome of the resolve call. An active link moves
// the session to AwaitingInput with the first allowed method preselected; an
// expired or disabled link parks it in Unavailable.
func (s *Session) AttachLink(l *link.PaymentLink, status link.Status) error {
	if status == link.StatusActive {
		if err := s.transition(StateAwaitingInput); err != nil {
			return err
		}
		s.link = l
		s.linkStatus = status
		s.method = l.AllowedMethods[0]
		return nil
	}

	reason := "This payment link is unavailable"
	switch status {
	case link.StatusExpired:
		reason = "This payment link has expired"
	case link.StatusDisabled:
		reason = "This payment link has been disabled"
	}
	if err := s.transition(StateUnavailable); err != nil {
		return err
	}
	s.link = l
	s.linkStatus = status
	s.reason = reason
	return nil
}

// MarkUnavailable parks the session in Unavailable when the resolve call
// itself failed (link not found, collaborator error).
func (s *Session) MarkUnavailable(reason string) error {
	if err := s.transition(StateUnavailable); err != nil {
		return err
	}
	s.reason = reason
	return nil
}

// SelectMethod reassigns the payment method. Only members of the link's
// allowed methods are accepted; asking for anything else is a caller bug and
// returns ErrMethodNotAllowed.
func (s *Session) SelectMethod(m link.PaymentMethod) error {
	if s.state != StateAwaitingInput {
		return fmt.Errorf("%w: select method in %s", common.ErrInvalidTransition, s.state)
	}
	if !s.link.AllowsMethod(m) {
		return common.ErrMethodNotAllowed
	}
	s.method = m
	return nil
}

// BeginSubmit captures the validated customer and amount and moves to
// Submitting. The state itself is the duplicate-submit guard: a second submit
// while one is in flight fails the transition check.
func (s *Session) BeginSubmit(c Customer, amount decimal.Decimal) error {
	if err := s.transition(StateSubmitting); err != nil {
		return err
	}
	s.customer = c
	s.amount = amount
	return nil
}

// CompleteSubmit applies a successful provider response. Pending parks the
// session without a confirmed outcome; otherwise it is Succeeded.
func (s *Session) CompleteSubmit(transactionID string, pending bool) error {
	to := StateSucceeded
	if pending {
		to = StatePending
	}
	if err := s.transition(to); err != nil {
		return err
	}
	s.transactionID = transactionID
	return nil
}

// FailSubmit applies a provider rejection or call failure. The session stays
// retryable: Retry returns it to AwaitingInput with fields preserved.
func (s *Session) FailSubmit(message string) error {
	if err := s.transition(StateFailed); err != nil {
		return err
	}
	s.failure = message
	return nil
}

// Retry moves a failed session back to AwaitingInput. Customer fields and the
// selected method are preserved so nothing has to be re-entered.
func (s *Session) Retry() error {
	if err := s.transition(StateAwaitingInput); err != nil {
		return err
	}
	s.failure = ""
	return nil
}
