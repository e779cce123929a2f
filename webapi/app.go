// Package webapi assembles the Fiber application: global middleware, the
// health route and the feature route groups.
package webapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kobopay/accountsvc/pkg/config"
	accountsvc "github.com/kobopay/accountsvc/pkg/service/account"
	authsvc "github.com/kobopay/accountsvc/pkg/service/auth"
	transfersvc "github.com/kobopay/accountsvc/pkg/service/transfer"
	"github.com/kobopay/accountsvc/webapi/common"
	"github.com/kobopay/accountsvc/webapi/customer"
	"github.com/kobopay/accountsvc/webapi/transfer"
)

// New builds the Fiber app with all routes and middleware.
func New(
	cfg *config.App,
	accountSvc *accountsvc.Service,
	transferSvc *transfersvc.Service,
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
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Account service is up")
	})

	claims := authsvc.New(cfg.Auth.Jwt, slog.Default())
	customer.Routes(app, accountSvc, claims, cfg)
	transfer.Routes(app, transferSvc, cfg)

	return app
}
