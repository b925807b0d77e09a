package link

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/junubipay/paylink/pkg/domain/common"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

// CreateInput is the raw payment-link creation form. Amount fields arrive as
// strings exactly as typed; ExpiresAt is nil when no expiry was chosen.
type CreateInput struct {
	Title               string
	Description         string
	AllowCustomAmount   bool
	Amount              string
	MinAmount           string
	MaxAmount           string
	ExpiresAt           *time.Time
	RedirectURL         string
	CollectCustomerInfo bool
	AllowedMethods      []PaymentMethod
}

// NormalizedLink is the accepted output of ValidateCreate. It is the only way
// a link draft comes into existence; nothing else constructs one ad hoc.
type NormalizedLink struct {
	Title               string
	Description         string
	Amount              AmountPolicy
	ExpiresAt           *time.Time
	RedirectURL         string
	CollectCustomerInfo bool
	AllowedMethods      []PaymentMethod
}

// ValidateCreate checks the full creation form against the given clock
// reading. Every field is checked independently, never short-circuiting, so
// the returned error set names all invalid fields in one pass. A nil error
// set means the draft was accepted.
func ValidateCreate(in CreateInput, now time.Time) (*NormalizedLink, common.FieldErrors) {
	ferrs := common.FieldErrors{}

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		ferrs["title"] = "Title is required"
	case utf8.RuneCountInString(title) > maxTitleLen:
		ferrs["title"] = "Title must be 100 characters or less"
	}

	description := strings.TrimSpace(in.Description)
	switch {
	case description == "":
		ferrs["description"] = "Description is required"
	case utf8.RuneCountInString(description) > maxDescriptionLen:
		ferrs["description"] = "Description must be 500 characters or less"
	}

	policy, amountErrs := ParseAmountPolicy(AmountInput{
		AllowCustomAmount: in.AllowCustomAmount,
		Amount:            in.Amount,
		MinAmount:         in.MinAmount,
		MaxAmount:         in.MaxAmount,
	})
	ferrs.Merge(amountErrs)

	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		ferrs["expiresAt"] = "Expiry date must be in the future"
	}

	redirectURL := strings.TrimSpace(in.RedirectURL)
	if redirectURL != "" && !isAbsoluteURL(redirectURL) {
		ferrs["redirectUrl"] = "Please enter a valid URL"
	}

	if len(in.AllowedMethods) == 0 {
		ferrs["paymentMethods"] = "Select at least one payment method"
	} else {
		for _, m := range in.AllowedMethods {
			if !m.Valid() {
				ferrs["paymentMethods"] = "Unknown payment method"
				break
			}
		}
	}

	if len(ferrs) > 0 {
		return nil, ferrs
	}

	return &NormalizedLink{
		Title:               title,
		Description:         description,
		Amount:              *policy,
		ExpiresAt:           in.ExpiresAt,
		RedirectURL:         redirectURL,
		CollectCustomerInfo: in.CollectCustomerInfo,
		AllowedMethods:      in.AllowedMethods,
	}, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
