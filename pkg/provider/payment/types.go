package payment

import (
	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	// PaymentPending indicates the provider accepted the payment but has not
	// confirmed it yet.
	PaymentPending PaymentStatus = "pending"
	// PaymentCompleted indicates the payment completed successfully.
	PaymentCompleted PaymentStatus = "completed"
	// PaymentFailed indicates the provider rejected the payment.
	PaymentFailed PaymentStatus = "failed"
)

// InitiatePaymentParams holds the parameters for the InitiatePayment method.
type InitiatePaymentParams struct {
	LinkID        uuid.UUID
	Method        link.PaymentMethod
	Amount        decimal.Decimal
	Currency      string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// InitiatePaymentResponse is the provider's synchronous verdict on a single
// initiate call.
type InitiatePaymentResponse struct {
	// TransactionID is the id of the transaction in the payment provider.
	TransactionID string
	Status        PaymentStatus
	// Message carries the provider's human-readable reason on failure.
	Message string
}
