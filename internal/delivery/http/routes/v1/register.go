package v1

import (
	"jobdeck/internal/delivery/http/handler"
	"jobdeck/internal/delivery/http/middleware"
	"jobdeck/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Auth     *middleware.AuthMiddleware
	Approval *middleware.ApprovalMiddleware

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	JobsHandler        *handler.JobsHandler
	KitHandler         *handler.KitHandler
	ApplicationHandler *handler.ApplicationHandler
	SettingsHandler    *handler.SettingsHandler
	AdminHandler       *handler.AdminHandler
	WSHandler          *ws.Handler
}

// Register wires the v1 surface. Auth is public; /users/me works for
// any authenticated account so pending users can see their state; the
// dashboard groups additionally require approval; /admin requires the
// admin role.
func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	d.AuthHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", d.Auth.Middleware())
	d.UserHandler.RegisterRoutes(protected.Group("/users"))
	if d.WSHandler != nil {
		protected.Get("/ws", d.WSHandler.HandleEventsWS)
	}

	approved := protected.Group("", d.Approval.Middleware())
	jobs := approved.Group("/jobs")
	d.JobsHandler.RegisterRoutes(jobs)
	d.KitHandler.RegisterRoutes(jobs)
	d.ApplicationHandler.RegisterRoutes(approved.Group("/applications"))
	d.SettingsHandler.RegisterRoutes(approved.Group("/settings"))

	admin := protected.Group("/admin", d.Approval.AdminOnly())
	d.AdminHandler.RegisterRoutes(admin)
}
