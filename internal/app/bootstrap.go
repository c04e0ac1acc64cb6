package app

import (
	"fmt"
	"strings"

	"job-skill-api/internal/catalog"
	"job-skill-api/internal/config"
	"job-skill-api/internal/delivery/http/middleware"
	"job-skill-api/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber   *fiber.App
	Catalog *catalog.Catalog
}

func New(cfg config.Config) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	cat := catalog.New()

	registerGlobalMiddleware(f)
	routes.NewRegistry(cfg, cat).Register(f)

	return &App{Fiber: f, Catalog: cat}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	app := New(cfg)
	return app, func() error { return nil }, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
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
