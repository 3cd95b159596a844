package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/campus-portal-api/internal/config"
	"github.com/noah-isme/campus-portal-api/internal/handler"
	"github.com/noah-isme/campus-portal-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	CourseHandler    *handler.CourseHandler
	DashboardHandler *handler.DashboardHandler
	SeedHandler      *handler.SeedHandler
	Guard            fiber.Handler
	AuthRateLimit    fiber.Handler
}

// Register wires the HTTP routes into the fiber application. The guard runs
// before every route below it; which paths it actually protects is decided
// by its own route classification.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	guard := deps.Guard
	if guard == nil {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}
	app.Use(guard)

	if deps.AuthHandler != nil {
		auth := app.Group("/api/auth")
		deps.AuthHandler.Register(auth, deps.AuthRateLimit)
	}

	if deps.CourseHandler != nil {
		courses := app.Group("/api/courses")
		deps.CourseHandler.Register(courses)
	}

	if deps.DashboardHandler != nil {
		dashboard := app.Group("/api/dashboard")
		deps.DashboardHandler.Register(dashboard)
	}

	if deps.SeedHandler != nil {
		// under /api/admin so the guard requires the ADMIN role
		seed := app.Group("/api/admin/seed")
		deps.SeedHandler.Register(seed)
	}
}
