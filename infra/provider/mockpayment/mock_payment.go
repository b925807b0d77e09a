// Package mockpayment simulates the mobile-money payment collaborator for
// tests, the CLI demo and local development. It is NOT for production use:
// real MTN MoMo and Digicash integrations confirm asynchronously through
// webhooks, which this core deliberately does not model.
package mockpayment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/junubipay/paylink/pkg/provider/payment"
)

// MockPaymentProvider records every initiate call it receives. MTN MoMo
// payments complete synchronously; Digicash payments come back pending,
// mirroring how the real wallet push behaves.
type MockPaymentProvider struct {
	mu       sync.Mutex
	payments map[string]*payment.InitiatePaymentParams

	// RejectMessage, when non-empty, makes every initiate call fail with the
	// given message. Tests use it to exercise the failure path.
	RejectMessage string
}

// NewMockPaymentProvider creates a new instance of MockPaymentProvider.
func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{
		payments: make(map[string]*payment.InitiatePaymentParams),
	}
}

// InitiatePayment simulates submitting a payment to a mobile-money provider.
func (m *MockPaymentProvider) InitiatePayment(
	ctx context.Context,
	params *payment.InitiatePaymentParams,
) (*payment.InitiatePaymentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RejectMessage != "" {
		return &payment.InitiatePaymentResponse{
			Status:  payment.PaymentFailed,
			Message: m.RejectMessage,
		}, nil
	}

	txID := "mock_" + uuid.NewString()
	m.payments[txID] = params

	status := payment.PaymentCompleted
	if params.Method == link.MethodDigicash {
		status = payment.PaymentPending
	}
	return &payment.InitiatePaymentResponse{
		TransactionID: txID,
		Status:        status,
	}, nil
}

// Recorded returns the number of initiate calls accepted so far.
func (m *MockPaymentProvider) Recorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payments)
}
