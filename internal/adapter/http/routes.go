package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with the service middleware and routes.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "portfolio-server",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(AccessLog())
	app.Use(recover.New())
	Register(app, h)
	return app
}

func Register(app *fiber.App, h *Handler) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Get("/portfolio", h.GetPortfolio)
	api.Get("/resume", h.GetResume)
	api.Post("/contact", h.PostContact)
	api.Get("/locales", h.GetLocales)
}
