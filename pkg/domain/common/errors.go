package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrLinkNotFound is returned when a payment link cannot be resolved by id.
var ErrLinkNotFound = errors.New("payment link not found")

// ErrMethodNotAllowed is returned when a checkout session is asked to select a
// payment method the link does not allow. This is a programming error on the
// caller's side, not a customer input error.
var ErrMethodNotAllowed = errors.New("payment method not allowed for this link")

// ErrInvalidTransition is returned when a checkout session is driven through a
// transition its current state does not permit.
var ErrInvalidTransition = errors.New("invalid checkout state transition")

// ErrSessionClosed is returned when a result arrives for a checkout session
// that has already been torn down.
var ErrSessionClosed = errors.New("checkout session closed")

// ErrPaymentRejected wraps a business rejection reported by the payment
// collaborator. The core does not distinguish sub-reasons.
var ErrPaymentRejected = errors.New("payment rejected")

// FieldErrors is a field-keyed set of validation messages. Validators return
// it instead of failing on the first bad field so every problem surfaces in
// one pass.
type FieldErrors map[string]string

// Error implements the error interface with a deterministic rendering.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(parts, "; ")
}

// Merge copies every entry of other into fe, overwriting on key collision.
func (fe FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		fe[k] = v
	}
}

// AsError returns fe as an error, or nil when no field failed. Returning the
// map directly would yield a non-nil error interface even when empty.
func (fe FieldErrors) AsError() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
