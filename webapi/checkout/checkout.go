// Package checkout exposes the public checkout HTTP routes: resolving a link
// and submitting a payment against it.
package checkout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/junubipay/paylink/pkg/domain/checkout"
	domainlink "github.com/junubipay/paylink/pkg/domain/link"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	"github.com/junubipay/paylink/webapi/common"
)

// Routes registers the public checkout routes.
func Routes(app *fiber.App, svc *checkoutsvc.Service, currency string) {
	app.Get("/pay/:id", ResolveLink(svc, currency))
	app.Post("/pay/:id", SubmitCheckout(svc))
}

// ResolveLink returns a Fiber handler for the public checkout page lookup.
// The derived link status decides what the customer sees; an expired,
// disabled or missing link reports its reason instead of the form.
func ResolveLink(svc *checkoutsvc.Service, currency string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid link id", err.Error())
		}

		sess, err := svc.Start(c.Context(), id)
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Payment link resolved", ToResolveResponse(sess, currency))
	}
}

// SubmitCheckout returns a Fiber handler that runs a full checkout attempt:
// resolve, select method, validate customer fields, initiate payment. Each
// HTTP submission is its own session; retries arrive as fresh requests.
func SubmitCheckout(svc *checkoutsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid link id", err.Error())
		}

		req, err := common.BindAndValidate[SubmitRequest](c)
		if req == nil {
			return err
		}

		sess, err := svc.StartSubmission(c.Context(), id)
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}
		if sess.State() == checkout.StateUnavailable {
			return common.ErrorResponseJSON(c, fiber.StatusGone,
				"Payment link unavailable", sess.UnavailableReason())
		}

		if req.PaymentMethod != "" {
			if err := sess.SelectMethod(domainlink.PaymentMethod(req.PaymentMethod)); err != nil {
				return common.DomainErrorResponseJSON(c, err)
			}
		}

		err = svc.Submit(c.Context(), sess, checkout.CustomerInput{
			Name:        req.Name,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		}, req.Amount)
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}

		resp := &SubmitResponse{
			State:         string(sess.State()),
			TransactionID: sess.TransactionID(),
		}
		switch sess.State() {
		case checkout.StateSucceeded, checkout.StatePending:
			resp.RedirectURL = sess.Link().RedirectURL
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment submitted", resp)
		default:
			resp.Message = sess.Failure()
			return common.ErrorResponseJSON(c, fiber.StatusPaymentRequired, "Payment failed", resp)
		}
	}
}
