// Package link holds the payment-link domain: the PaymentLink entity, its
// amount policy, the creation validator and the derived-status resolver.
package link

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies a mobile-money rail a link can accept.
type PaymentMethod string

const (
	// MethodMTNMoMo is MTN Mobile Money.
	MethodMTNMoMo PaymentMethod = "mtn_momo"
	// MethodDigicash is the Digicash wallet.
	MethodDigicash PaymentMethod = "digicash"
)

// Valid reports whether m names a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == MethodMTNMoMo || m == MethodDigicash
}

// PaymentLink is a merchant-created, shareable request for payment.
//
// Amount and ExpiresAt are write-once: they are fixed by the creation
// validator and never mutated afterwards. Enabled is the only field a
// merchant may flip after creation. ClickCount and CreatedAt are bookkeeping
// owned by the store collaborator.
type PaymentLink struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	Amount              AmountPolicy
	ExpiresAt           *time.Time
	RedirectURL         string
	CollectCustomerInfo bool
	AllowedMethods      []PaymentMethod
	Enabled             bool
	ClickCount          int64
	CreatedAt           time.Time
}

// AllowsMethod reports whether m is a member of the link's allowed methods.
func (l *PaymentLink) AllowsMethod(m PaymentMethod) bool {
	for _, allowed := range l.AllowedMethods {
		if allowed == m {
			return true
		}
	}
	return false
}
