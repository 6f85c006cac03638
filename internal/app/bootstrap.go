package app

import (
	"fmt"
	"strings"

	"jobdeck/internal/config"
	"jobdeck/internal/delivery/http/handler"
	"jobdeck/internal/delivery/http/middleware"
	"jobdeck/internal/delivery/http/routes"
	v1 "jobdeck/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app and the route surface.
// The returned cleanup closes the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	authMw := middleware.NewAuthMiddleware(c.JWT)
	approvalMw := middleware.NewApprovalMiddleware(c.UserRepo)

	registry := routes.NewRegistry(v1.Deps{
		Auth:               authMw,
		Approval:           approvalMw,
		AuthHandler:        handler.NewAuthHandler(c.AuthUC),
		UserHandler:        handler.NewUserHandler(c.UserUC),
		JobsHandler:        handler.NewJobsHandler(c.JobListUC, c.RefreshUC),
		KitHandler:         handler.NewKitHandler(c.KitUC),
		ApplicationHandler: handler.NewApplicationHandler(c.AppUC),
		SettingsHandler:    handler.NewSettingsHandler(c.SettingsUC),
		AdminHandler:       handler.NewAdminHandler(c.AdminUC, c.StatusUC),
		WSHandler:          c.WSHandler,
	})
	registry.Register(f)

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
