// Package link exposes the merchant-side payment-link HTTP routes.
package link

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	linksvc "github.com/junubipay/paylink/pkg/service/link"
	"github.com/junubipay/paylink/webapi/common"
)

// Routes registers HTTP routes for merchant link operations.
func Routes(app *fiber.App, svc *linksvc.Service) {
	app.Post("/links", CreateLink(svc))
	app.Get("/links", ListLinks(svc))
	app.Get("/links/:id", GetLink(svc))
	app.Patch("/links/:id/enabled", SetEnabled(svc))
}

// CreateLink returns a Fiber handler that validates and persists a new link.
func CreateLink(svc *linksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[CreateLinkRequest](c)
		if req == nil {
			return err
		}

		created, err := svc.Create(c.Context(), req.ToCreateInput())
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusCreated,
			"Payment link created", ToLinkDTO(created, svc.StatusOf(created)))
	}
}

// ListLinks returns a Fiber handler that lists all links with derived status.
func ListLinks(svc *linksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ls, err := svc.List(c.Context())
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}

		dtos := make([]*LinkDTO, 0, len(ls))
		for _, l := range ls {
			dtos = append(dtos, ToLinkDTO(l, svc.StatusOf(l)))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment links fetched", dtos)
	}
}

// GetLink returns a Fiber handler that fetches one link with derived status.
func GetLink(svc *linksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid link id", err.Error())
		}

		l, status, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment link fetched", ToLinkDTO(l, status))
	}
}

// SetEnabled returns a Fiber handler for the merchant enable/disable toggle.
func SetEnabled(svc *linksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid link id", err.Error())
		}

		req, err := common.BindAndValidate[SetEnabledRequest](c)
		if req == nil {
			return err
		}

		l, err := svc.SetEnabled(c.Context(), id, *req.Enabled)
		if err != nil {
			return common.DomainErrorResponseJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment link updated", ToLinkDTO(l, svc.StatusOf(l)))
	}
}
