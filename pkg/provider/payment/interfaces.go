// Package payment defines the payment-initiation collaborator. The core
// submits exactly one initiate call per attempt and treats whatever it
// reports as final; idempotency keys and async confirmation are the
// provider's responsibility.
package payment

import "context"

// Payment is the interface for a payment provider.
type Payment interface {
	InitiatePayment(
		ctx context.Context,
		params *InitiatePaymentParams,
	) (*InitiatePaymentResponse, error)
}
