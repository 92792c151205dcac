package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/http/handlers"
	"github.com/spec-kit/sublease-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Profiles       *handlers.ProfilesHandler
	Agencies       *handlers.AgenciesHandler
	Listings       *handlers.ListingsHandler
	Admin          *handlers.AdminHandler
	Requests       *handlers.RequestsHandler
	Extraction     *handlers.ExtractionHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Privileged writes carry the bearer token in the body; the services
	// verify it before touching the store.
	api.Post("/create-profile", cfg.Profiles.Create)
	api.Post("/create-agency", cfg.Agencies.Create)
	api.Post("/update-agency", cfg.Agencies.Update)
	api.Post("/create-agency-listing", cfg.Listings.Create)
	api.Post("/verify-agency", cfg.Admin.VerifyAgency)
	api.Post("/verify-user", cfg.Admin.VerifyUser)

	api.Post("/extract-listing", cfg.Extraction.Extract)

	// Public reads.
	api.Get("/agencies", cfg.Agencies.List)
	api.Get("/listings", cfg.Listings.List)
	api.Get("/listings/:id/floor-plans", cfg.Listings.FloorPlans)
	api.Get("/requests", cfg.Requests.List)

	// Session-derived identity from the Authorization header.
	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/send-emails", cfg.Admin.SendEmails)
	protected.Post("/requests", cfg.Requests.Create)
	protected.Put("/requests/:id", cfg.Requests.Update)
	protected.Delete("/requests/:id", cfg.Requests.Delete)
}
