package link_test

import (
	"testing"

	"github.com/junubipay/paylink/pkg/domain/link"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountPolicy_Fixed(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantErr   string
		wantValue string
	}{
		{"whole amount", "500", "", "500"},
		{"two decimals", "99.99", "", "99.99"},
		{"trailing zeros", "100.500", "", "100.5"},
		{"zero", "0", "amount", ""},
		{"negative", "-5", "amount", ""},
		{"non-numeric", "abc", "amount", ""},
		{"empty", "", "amount", ""},
		{"three decimals", "100.005", "amount", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, ferrs := link.ParseAmountPolicy(link.AmountInput{
				AllowCustomAmount: false,
				Amount:            tt.amount,
			})
			if tt.wantErr != "" {
				require.Nil(t, policy)
				assert.Equal(t, "Amount must be greater than 0", ferrs[tt.wantErr])
				return
			}
			require.Nil(t, ferrs.AsError())
			assert.Equal(t, link.AmountFixed, policy.Kind)
			assert.Equal(t, tt.wantValue, policy.Amount.String())
		})
	}
}

func TestParseAmountPolicy_Range(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		wantErrs map[string]string
	}{
		{"both absent", "", "", nil},
		{"min only", "10", "", nil},
		{"max only", "", "100", nil},
		{"valid bounds", "10", "100", nil},
		{"min equals max", "50", "50", map[string]string{
			"maxAmount": "Maximum amount must be greater than minimum amount",
		}},
		{"min above max", "100", "10", map[string]string{
			"maxAmount": "Maximum amount must be greater than minimum amount",
		}},
		{"non-positive min", "0", "100", map[string]string{
			"minAmount": "Minimum amount must be greater than 0",
		}},
		{"non-positive max", "10", "-1", map[string]string{
			"maxAmount": "Maximum amount must be greater than 0",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, ferrs := link.ParseAmountPolicy(link.AmountInput{
				AllowCustomAmount: true,
				MinAmount:         tt.min,
				MaxAmount:         tt.max,
			})
			if tt.wantErrs != nil {
				require.Nil(t, policy)
				for field, msg := range tt.wantErrs {
					assert.Equal(t, msg, ferrs[field])
				}
				return
			}
			require.Nil(t, ferrs.AsError())
			assert.Equal(t, link.AmountRange, policy.Kind)
		})
	}
}

func TestAmountPolicy_Charge(t *testing.T) {
	fixed, ferrs := link.ParseAmountPolicy(link.AmountInput{Amount: "500"})
	require.Nil(t, ferrs.AsError())

	bounded, ferrs := link.ParseAmountPolicy(link.AmountInput{
		AllowCustomAmount: true,
		MinAmount:         "10",
		MaxAmount:         "100",
	})
	require.Nil(t, ferrs.AsError())

	t.Run("fixed ignores requested amount", func(t *testing.T) {
		got, ferrs := fixed.Charge("42")
		require.Nil(t, ferrs.AsError())
		assert.True(t, got.Equal(decimal.NewFromInt(500)))
	})

	t.Run("range accepts in-bounds amount", func(t *testing.T) {
		got, ferrs := bounded.Charge("55.50")
		require.Nil(t, ferrs.AsError())
		assert.Equal(t, "55.5", got.String())
	})

	t.Run("range rejects below minimum", func(t *testing.T) {
		_, ferrs := bounded.Charge("5")
		assert.Equal(t, "Amount must be at least 10", ferrs["amount"])
	})

	t.Run("range rejects above maximum", func(t *testing.T) {
		_, ferrs := bounded.Charge("101")
		assert.Equal(t, "Amount must be at most 100", ferrs["amount"])
	})

	t.Run("range rejects missing amount", func(t *testing.T) {
		_, ferrs := bounded.Charge("")
		assert.Equal(t, "Amount must be greater than 0", ferrs["amount"])
	})

	t.Run("bound values themselves are accepted", func(t *testing.T) {
		for _, raw := range []string{"10", "100"} {
			_, ferrs := bounded.Charge(raw)
			assert.Nil(t, ferrs.AsError(), "amount %s", raw)
		}
	})
}
