// Package checkout drives the customer-facing checkout session against the
// link store and the payment collaborator. The session state machine itself
// lives in pkg/domain/checkout; this service owns the two suspension points
// (resolve, submit) and the liveness guard around them.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/checkout"
	"github.com/junubipay/paylink/pkg/domain/common"
	"github.com/junubipay/paylink/pkg/provider/links"
	"github.com/junubipay/paylink/pkg/provider/payment"
)

// Service orchestrates checkout sessions. One service instance serves many
// sessions; each session is owned by the context that created it.
type Service struct {
	links    links.Reader
	payments payment.Payment
	currency string
	logger   *slog.Logger
	clock    func() time.Time
}

// New creates a checkout service. A nil clock defaults to time.Now.
func New(
	store links.Reader,
	payments payment.Payment,
	currency string,
	logger *slog.Logger,
	clock func() time.Time,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		links:    store,
		payments: payments,
		currency: currency,
		logger:   logger,
		clock:    clock,
	}
}

// Start creates a session and resolves the link into it, counting one click
// against the link. The returned session is in AwaitingInput when the link is
// active, or Unavailable when it is expired, disabled or missing. Only
// collaborator faults other than not-found surface as errors.
func (s *Service) Start(ctx context.Context, linkID uuid.UUID) (*checkout.Session, error) {
	return s.start(ctx, linkID, true)
}

// StartSubmission is Start without the click. A submission always follows a
// resolve the customer already saw, so only viewing the page counts.
func (s *Service) StartSubmission(ctx context.Context, linkID uuid.UUID) (*checkout.Session, error) {
	return s.start(ctx, linkID, false)
}

func (s *Service) start(ctx context.Context, linkID uuid.UUID, countClick bool) (*checkout.Session, error) {
	sess := checkout.NewSession()
	if err := s.resolve(ctx, sess, linkID, countClick); err != nil {
		return nil, err
	}
	return sess, nil
}

// resolve fetches the link and applies the outcome to the session. The
// result is discarded when the session was closed while the fetch was in
// flight.
func (s *Service) resolve(ctx context.Context, sess *checkout.Session, linkID uuid.UUID, countClick bool) error {
	gen := sess.Generation()

	l, err := s.links.Get(ctx, linkID)
	if !sess.Alive(gen) {
		s.logger.Debug("discarding resolve result for closed session", "session_id", sess.ID())
		return common.ErrSessionClosed
	}
	if err != nil {
		if errors.Is(err, common.ErrLinkNotFound) {
			return sess.MarkUnavailable("This payment link could not be found")
		}
		return fmt.Errorf("failed to resolve payment link: %w", err)
	}

	status := l.StatusAt(s.clock().UTC())
	if err := sess.AttachLink(l, status); err != nil {
		return err
	}

	// Click counting is bookkeeping; a failure must not break checkout.
	if countClick {
		if err := s.links.IncrementClicks(ctx, l.ID); err != nil {
			s.logger.Warn("failed to count link click", "link_id", l.ID, "error", err)
		}
	}
	return nil
}

// Submit validates the customer fields, charges the amount policy and runs
// one initiate-payment call. Validation failures come back as
// common.FieldErrors with the session still in AwaitingInput. A provider
// rejection or call failure moves the session to Failed, which is not an
// error from the caller's point of view: the outcome is on the session.
//
// A session sitting in Failed is retried transparently: fields are preserved
// and re-validated, never re-entered.
func (s *Service) Submit(
	ctx context.Context,
	sess *checkout.Session,
	in checkout.CustomerInput,
	requestedAmount string,
) error {
	if sess.State() == checkout.StateFailed {
		if err := sess.Retry(); err != nil {
			return err
		}
	}
	if sess.State() != checkout.StateAwaitingInput {
		return fmt.Errorf("%w: submit in %s", common.ErrInvalidTransition, sess.State())
	}

	l := sess.Link()
	ferrs := common.FieldErrors{}

	customer, customerErrs := checkout.ValidateCustomer(in, l.CollectCustomerInfo)
	ferrs.Merge(customerErrs)

	amount, amountErrs := l.Amount.Charge(requestedAmount)
	ferrs.Merge(amountErrs)

	if len(ferrs) > 0 {
		return ferrs
	}

	if err := sess.BeginSubmit(*customer, amount); err != nil {
		return err
	}

	gen := sess.Generation()
	resp, err := s.payments.InitiatePayment(ctx, &payment.InitiatePaymentParams{
		LinkID:        l.ID,
		Method:        sess.SelectedMethod(),
		Amount:        amount,
		Currency:      s.currency,
		CustomerName:  customer.Name,
		CustomerPhone: customer.PhoneNumber,
		CustomerEmail: customer.Email,
	})
	if !sess.Alive(gen) {
		s.logger.Debug("discarding submit result for closed session", "session_id", sess.ID())
		return common.ErrSessionClosed
	}
	if err != nil {
		s.logger.Warn("initiate payment call failed",
			"link_id", l.ID, "method", sess.SelectedMethod(), "error", err)
		return sess.FailSubmit("Payment could not be processed. Please try again.")
	}

	switch resp.Status {
	case payment.PaymentCompleted:
		s.logger.Info("payment succeeded",
			"link_id", l.ID, "transaction_id", resp.TransactionID)
		return sess.CompleteSubmit(resp.TransactionID, false)
	case payment.PaymentPending:
		s.logger.Info("payment pending",
			"link_id", l.ID, "transaction_id", resp.TransactionID)
		return sess.CompleteSubmit(resp.TransactionID, true)
	default:
		message := resp.Message
		if message == "" {
			message = "Payment was rejected"
		}
		s.logger.Info("payment rejected", "link_id", l.ID, "message", message)
		return sess.FailSubmit(message)
	}
}
