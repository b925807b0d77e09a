package link

import (
	"fmt"

	"github.com/junubipay/paylink/pkg/domain/common"
	"github.com/shopspring/decimal"
)

// AmountKind tags an AmountPolicy as fixed-price or customer-chosen.
type AmountKind string

const (
	// AmountFixed means the merchant set the price; the customer cannot change it.
	AmountFixed AmountKind = "fixed"
	// AmountRange means the customer chooses the amount, optionally bounded
	// by a minimum and a maximum.
	AmountRange AmountKind = "range"
)

// AmountPolicy encodes the rule governing what a customer may pay through a
// link. Amounts are SSP values with at most two decimal places; anything finer
// is rejected at parse time rather than rounded.
type AmountPolicy struct {
	Kind   AmountKind
	Amount decimal.Decimal // fixed price, zero unless Kind == AmountFixed
	Min    *decimal.Decimal
	Max    *decimal.Decimal
}

// AmountInput carries the raw amount fields of the creation form. Empty
// strings mean the field was left blank.
type AmountInput struct {
	AllowCustomAmount bool
	Amount            string
	MinAmount         string
	MaxAmount         string
}

// ParseAmountPolicy validates the raw amount fields and produces a policy, or
// a field-keyed error set. All fields are checked independently so every
// problem is reported in one pass.
func ParseAmountPolicy(in AmountInput) (*AmountPolicy, common.FieldErrors) {
	ferrs := common.FieldErrors{}

	if !in.AllowCustomAmount {
		amount, ok := parsePositiveAmount(in.Amount)
		if !ok {
			ferrs["amount"] = "Amount must be greater than 0"
			return nil, ferrs
		}
		return &AmountPolicy{Kind: AmountFixed, Amount: amount}, nil
	}

	policy := &AmountPolicy{Kind: AmountRange}
	if in.MinAmount != "" {
		m, ok := parsePositiveAmount(in.MinAmount)
		if !ok {
			ferrs["minAmount"] = "Minimum amount must be greater than 0"
		} else {
			policy.Min = &m
		}
	}
	if in.MaxAmount != "" {
		m, ok := parsePositiveAmount(in.MaxAmount)
		if !ok {
			ferrs["maxAmount"] = "Maximum amount must be greater than 0"
		} else {
			policy.Max = &m
		}
	}
	if policy.Min != nil && policy.Max != nil && !policy.Min.LessThan(*policy.Max) {
		ferrs["maxAmount"] = "Maximum amount must be greater than minimum amount"
	}
	if len(ferrs) > 0 {
		return nil, ferrs
	}
	return policy, nil
}

// Charge resolves the amount a customer actually pays. Fixed links ignore the
// requested amount entirely; range links require it and enforce the bounds.
func (p *AmountPolicy) Charge(requested string) (decimal.Decimal, common.FieldErrors) {
	if p.Kind == AmountFixed {
		return p.Amount, nil
	}

	ferrs := common.FieldErrors{}
	amount, ok := parsePositiveAmount(requested)
	if !ok {
		ferrs["amount"] = "Amount must be greater than 0"
		return decimal.Zero, ferrs
	}
	if p.Min != nil && amount.LessThan(*p.Min) {
		ferrs["amount"] = fmt.Sprintf("Amount must be at least %s", p.Min.String())
		return decimal.Zero, ferrs
	}
	if p.Max != nil && amount.GreaterThan(*p.Max) {
		ferrs["amount"] = fmt.Sprintf("Amount must be at most %s", p.Max.String())
		return decimal.Zero, ferrs
	}
	return amount, nil
}

// parsePositiveAmount accepts a decimal string that is strictly positive and
// has at most two fractional digits (SSP minor units).
func parsePositiveAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if !d.IsPositive() {
		return decimal.Zero, false
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, false
	}
	return d, true
}
