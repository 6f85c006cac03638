package routes

import (
	"jobdeck/internal/delivery/http/handler"
	v1 "jobdeck/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Deps
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{health: handler.NewHealthHandler(), v1: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
