// Package webapi wires the Fiber application: middleware, error rendering
// and the merchant and public route groups.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/junubipay/paylink/pkg/config"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	linksvc "github.com/junubipay/paylink/pkg/service/link"
	checkoutapi "github.com/junubipay/paylink/webapi/checkout"
	"github.com/junubipay/paylink/webapi/common"
	linkapi "github.com/junubipay/paylink/webapi/link"
)

// NewApp builds the Fiber app with all routes and middleware.
func NewApp(
	linkSvc *linksvc.Service,
	checkoutSvc *checkoutsvc.Service,
	cfg *config.App,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("paylink is up")
	})

	linkapi.Routes(app, linkSvc)
	checkoutapi.Routes(app, checkoutSvc, cfg.Currency)

	return app
}
