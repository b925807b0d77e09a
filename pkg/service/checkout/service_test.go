package checkout_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/infra/provider/memorylinks"
	"github.com/junubipay/paylink/pkg/domain/checkout"
	"github.com/junubipay/paylink/pkg/domain/common"
	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/junubipay/paylink/pkg/provider/payment"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePayment scripts the collaborator's verdict per call.
type fakePayment struct {
	responses []*payment.InitiatePaymentResponse
	errs      []error
	calls     []*payment.InitiatePaymentParams
	onCall    func()
}

func (f *fakePayment) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	i := len(f.calls)
	f.calls = append(f.calls, params)
	if f.onCall != nil {
		f.onCall()
	}
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return f.responses[i], nil
}

func completed(tx string) *payment.InitiatePaymentResponse {
	return &payment.InitiatePaymentResponse{TransactionID: tx, Status: payment.PaymentCompleted}
}

func rejected(msg string) *payment.InitiatePaymentResponse {
	return &payment.InitiatePaymentResponse{Status: payment.PaymentFailed, Message: msg}
}

type fixture struct {
	svc      *checkoutsvc.Service
	store    *memorylinks.Store
	payments *fakePayment
	now      time.Time
}

func newFixture(t *testing.T, payments *fakePayment) *fixture {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := memorylinks.New(clock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		svc:      checkoutsvc.New(store, payments, "SSP", logger, clock),
		store:    store,
		payments: payments,
		now:      now,
	}
}

func (f *fixture) seedLink(t *testing.T, mutate func(*link.PaymentLink)) *link.PaymentLink {
	t.Helper()
	l := &link.PaymentLink{
		Title:       "Invoice #1",
		Description: "Service fee",
		Amount:      link.AmountPolicy{Kind: link.AmountFixed, Amount: decimalFrom(t, "500")},
		AllowedMethods: []link.PaymentMethod{
			link.MethodMTNMoMo, link.MethodDigicash,
		},
		Enabled: true,
	}
	if mutate != nil {
		mutate(l)
	}
	created, err := f.store.Create(context.Background(), l)
	require.NoError(t, err)
	return created
}

func goodInput() checkout.CustomerInput {
	return checkout.CustomerInput{
		Name:        "Akech Deng",
		PhoneNumber: "+211912345678",
	}
}

func TestService_StartActiveLink(t *testing.T) {
	f := newFixture(t, &fakePayment{})
	l := f.seedLink(t, nil)

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateAwaitingInput, sess.State())
	assert.Equal(t, link.MethodMTNMoMo, sess.SelectedMethod())

	stored, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.ClickCount, "resolving counts a click")
}

func TestService_StartSubmissionDoesNotCountClicks(t *testing.T) {
	payments := &fakePayment{responses: []*payment.InitiatePaymentResponse{completed("tx_1")}}
	f := newFixture(t, payments)
	l := f.seedLink(t, nil)

	sess, err := f.svc.StartSubmission(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateAwaitingInput, sess.State())

	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), ""))
	assert.Equal(t, checkout.StateSucceeded, sess.State())

	stored, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stored.ClickCount, "only the resolve page counts clicks")
}

func TestService_StartInactiveLink(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		f := newFixture(t, &fakePayment{})
		past := f.now.Add(-time.Minute)
		l := f.seedLink(t, func(l *link.PaymentLink) { l.ExpiresAt = &past })

		sess, err := f.svc.Start(context.Background(), l.ID)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateUnavailable, sess.State())
		assert.Equal(t, "This payment link has expired", sess.UnavailableReason())
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, &fakePayment{})
		l := f.seedLink(t, func(l *link.PaymentLink) { l.Enabled = false })

		sess, err := f.svc.Start(context.Background(), l.ID)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateUnavailable, sess.State())
		assert.Equal(t, "This payment link has been disabled", sess.UnavailableReason())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, &fakePayment{})
		sess, err := f.svc.Start(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, checkout.StateUnavailable, sess.State())
		assert.Equal(t, "This payment link could not be found", sess.UnavailableReason())
	})
}

func TestService_SubmitSucceeds(t *testing.T) {
	payments := &fakePayment{responses: []*payment.InitiatePaymentResponse{completed("tx_1")}}
	f := newFixture(t, payments)
	l := f.seedLink(t, nil)

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), ""))
	assert.Equal(t, checkout.StateSucceeded, sess.State())
	assert.Equal(t, "tx_1", sess.TransactionID())

	require.Len(t, payments.calls, 1)
	call := payments.calls[0]
	assert.Equal(t, l.ID, call.LinkID)
	assert.Equal(t, link.MethodMTNMoMo, call.Method)
	assert.Equal(t, "SSP", call.Currency)
	assert.Equal(t, "500", call.Amount.String())
	assert.Equal(t, "+211912345678", call.CustomerPhone)
}

func TestService_SubmitValidationFailure(t *testing.T) {
	payments := &fakePayment{}
	f := newFixture(t, payments)
	l := f.seedLink(t, func(l *link.PaymentLink) { l.CollectCustomerInfo = true })

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	err = f.svc.Submit(context.Background(), sess, checkout.CustomerInput{
		Name:        "Akech Deng",
		PhoneNumber: "0912345678",
	}, "")
	var ferrs common.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Contains(t, ferrs, "phoneNumber")
	assert.Equal(t, "Email is required", ferrs["email"])

	assert.Equal(t, checkout.StateAwaitingInput, sess.State(), "session stays editable")
	assert.Empty(t, payments.calls, "no initiate call on validation failure")
}

func TestService_SubmitRangeAmount(t *testing.T) {
	payments := &fakePayment{responses: []*payment.InitiatePaymentResponse{completed("tx_1")}}
	f := newFixture(t, payments)
	min, max := decimalFrom(t, "10"), decimalFrom(t, "100")
	l := f.seedLink(t, func(l *link.PaymentLink) {
		l.Amount = link.AmountPolicy{Kind: link.AmountRange, Min: &min, Max: &max}
	})

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	err = f.svc.Submit(context.Background(), sess, goodInput(), "5")
	var ferrs common.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, "Amount must be at least 10", ferrs["amount"])

	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), "55"))
	assert.Equal(t, checkout.StateSucceeded, sess.State())
	assert.Equal(t, "55", payments.calls[0].Amount.String())
}

func TestService_SubmitRejectionThenRetry(t *testing.T) {
	payments := &fakePayment{responses: []*payment.InitiatePaymentResponse{
		rejected("Insufficient funds"),
		completed("tx_2"),
	}}
	f := newFixture(t, payments)
	l := f.seedLink(t, nil)

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), ""))
	assert.Equal(t, checkout.StateFailed, sess.State())
	assert.Equal(t, "Insufficient funds", sess.Failure())

	// Resubmitting the same fields goes straight back through Submitting.
	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), ""))
	assert.Equal(t, checkout.StateSucceeded, sess.State())
	assert.Equal(t, "tx_2", sess.TransactionID())
	assert.Len(t, payments.calls, 2)
}

func TestService_SubmitNetworkFailure(t *testing.T) {
	payments := &fakePayment{errs: []error{errors.New("connection reset")}}
	f := newFixture(t, payments)
	l := f.seedLink(t, nil)

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Submit(context.Background(), sess, goodInput(), ""))
	assert.Equal(t, checkout.StateFailed, sess.State())
	assert.NotEmpty(t, sess.Failure())
}

func TestService_SubmitDiscardedAfterClose(t *testing.T) {
	payments := &fakePayment{responses: []*payment.InitiatePaymentResponse{completed("tx_1")}}
	f := newFixture(t, payments)
	l := f.seedLink(t, nil)

	sess, err := f.svc.Start(context.Background(), l.ID)
	require.NoError(t, err)

	// The UI tears the session down while the initiate call is in flight.
	payments.onCall = func() { sess.Close() }
	err = f.svc.Submit(context.Background(), sess, goodInput(), "")
	assert.ErrorIs(t, err, common.ErrSessionClosed)
	assert.Empty(t, sess.TransactionID(), "late result was discarded")
}

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
