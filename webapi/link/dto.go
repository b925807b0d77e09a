package link

import (
	"time"

	"github.com/junubipay/paylink/pkg/domain/link"
)

//revive:disable

// CreateLinkRequest represents the request body for creating a payment link.
// Amount fields are strings exactly as typed in the dashboard form; the
// domain validator owns all the rules so every invalid field reports at once.
type CreateLinkRequest struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	AllowCustomAmount   bool       `json:"allow_custom_amount"`
	Amount              string     `json:"amount"`
	MinAmount           string     `json:"min_amount"`
	MaxAmount           string     `json:"max_amount"`
	ExpiresAt           *time.Time `json:"expires_at"`
	RedirectURL         string     `json:"redirect_url"`
	CollectCustomerInfo bool       `json:"collect_customer_info"`
	PaymentMethods      []string   `json:"payment_methods"`
}

// SetEnabledRequest represents the request body for the merchant toggle.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AmountPolicyDTO is the API representation of an amount policy.
type AmountPolicyDTO struct {
	Type   string `json:"type"`
	Amount string `json:"amount,omitempty"`
	Min    string `json:"min,omitempty"`
	Max    string `json:"max,omitempty"`
}

// LinkDTO is the API response representation of a payment link.
type LinkDTO struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	AmountPolicy        AmountPolicyDTO `json:"amount_policy"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	RedirectURL         string          `json:"redirect_url,omitempty"`
	CollectCustomerInfo bool            `json:"collect_customer_info"`
	PaymentMethods      []string        `json:"payment_methods"`
	Enabled             bool            `json:"enabled"`
	Status              string          `json:"status"`
	ClickCount          int64           `json:"click_count"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ToCreateInput maps the request to the domain creation form.
func (r *CreateLinkRequest) ToCreateInput() link.CreateInput {
	methods := make([]link.PaymentMethod, 0, len(r.PaymentMethods))
	for _, m := range r.PaymentMethods {
		methods = append(methods, link.PaymentMethod(m))
	}
	return link.CreateInput{
		Title:               r.Title,
		Description:         r.Description,
		AllowCustomAmount:   r.AllowCustomAmount,
		Amount:              r.Amount,
		MinAmount:           r.MinAmount,
		MaxAmount:           r.MaxAmount,
		ExpiresAt:           r.ExpiresAt,
		RedirectURL:         r.RedirectURL,
		CollectCustomerInfo: r.CollectCustomerInfo,
		AllowedMethods:      methods,
	}
}

// ToAmountPolicyDTO maps a domain amount policy to its API representation.
func ToAmountPolicyDTO(p link.AmountPolicy) AmountPolicyDTO {
	dto := AmountPolicyDTO{Type: string(p.Kind)}
	if p.Kind == link.AmountFixed {
		dto.Amount = p.Amount.String()
		return dto
	}
	if p.Min != nil {
		dto.Min = p.Min.String()
	}
	if p.Max != nil {
		dto.Max = p.Max.String()
	}
	return dto
}

// ToLinkDTO maps a domain link plus its derived status to the API shape.
func ToLinkDTO(l *link.PaymentLink, status link.Status) *LinkDTO {
	methods := make([]string, 0, len(l.AllowedMethods))
	for _, m := range l.AllowedMethods {
		methods = append(methods, string(m))
	}
	return &LinkDTO{
		ID:                  l.ID.String(),
		Title:               l.Title,
		Description:         l.Description,
		AmountPolicy:        ToAmountPolicyDTO(l.Amount),
		ExpiresAt:           l.ExpiresAt,
		RedirectURL:         l.RedirectURL,
		CollectCustomerInfo: l.CollectCustomerInfo,
		PaymentMethods:      methods,
		Enabled:             l.Enabled,
		Status:              string(status),
		ClickCount:          l.ClickCount,
		CreatedAt:           l.CreatedAt,
	}
}

//revive:enable
