package checkout

import (
	"github.com/junubipay/paylink/pkg/domain/checkout"
	linkapi "github.com/junubipay/paylink/webapi/link"
)

//revive:disable

// ResolveResponse is the public view of a link a customer is about to pay.
// Reason is set only when the link is not active.
type ResolveResponse struct {
	Status              string                   `json:"status"`
	Reason              string                   `json:"reason,omitempty"`
	Title               string                   `json:"title,omitempty"`
	Description         string                   `json:"description,omitempty"`
	AmountPolicy        *linkapi.AmountPolicyDTO `json:"amount_policy,omitempty"`
	PaymentMethods      []string                 `json:"payment_methods,omitempty"`
	CollectCustomerInfo bool                     `json:"collect_customer_info"`
	Currency            string                   `json:"currency,omitempty"`
}

// SubmitRequest represents the customer checkout form. Amount is only
// meaningful for range links; fixed links ignore it.
type SubmitRequest struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	PaymentMethod string `json:"payment_method"`
	Amount        string `json:"amount"`
}

// SubmitResponse reports the outcome of one checkout submission.
type SubmitResponse struct {
	State         string `json:"state"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
}

// ToResolveResponse maps a resolved session to the public view.
func ToResolveResponse(sess *checkout.Session, currency string) *ResolveResponse {
	if sess.State() == checkout.StateUnavailable {
		status := string(sess.LinkStatus())
		if status == "" {
			status = "unavailable"
		}
		return &ResolveResponse{
			Status: status,
			Reason: sess.UnavailableReason(),
		}
	}

	l := sess.Link()
	methods := make([]string, 0, len(l.AllowedMethods))
	for _, m := range l.AllowedMethods {
		methods = append(methods, string(m))
	}
	policy := linkapi.ToAmountPolicyDTO(l.Amount)
	return &ResolveResponse{
		Status:              string(sess.LinkStatus()),
		Title:               l.Title,
		Description:         l.Description,
		AmountPolicy:        &policy,
		PaymentMethods:      methods,
		CollectCustomerInfo: l.CollectCustomerInfo,
		Currency:            currency,
	}
}

//revive:enable
