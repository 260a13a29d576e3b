package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/founderkit/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Tools       *handlers.ToolsHandler
	Generations *handlers.GenerationsHandler
}

// Register wires all HTTP routes onto given Fiber app.
// requireAuth rejects anonymous callers; optionalAuth only identifies them.
func Register(app *fiber.App, h Handlers, requireAuth, optionalAuth fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Get("/me", requireAuth, h.Auth.Me)

	// Generators work anonymously; signed-in callers get history.
	t := v1.Group("/tools")
	t.Get("/", h.Tools.List)
	t.Post("/:tool", optionalAuth, h.Tools.Generate)

	g := v1.Group("/generations", requireAuth)
	g.Get("/", h.Generations.List)
	g.Get("/:id", h.Generations.Get)
	g.Delete("/:id", h.Generations.Delete)
}
