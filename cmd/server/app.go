package main

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"rest-core/internal/auth"
	"rest-core/internal/config"
	"rest-core/internal/events"
	"rest-core/internal/handlers"
	"rest-core/internal/logging"
	"rest-core/internal/model"
	"rest-core/internal/rest"
)

func newApp(cfg *config.Config, mm *model.ModelManager, pub *events.Publisher) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          rest.ErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	app.Use(logging.RequestLogger(logrus.StandardLogger()))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", auth.Middleware(cfg.JWTSecret))
	handlers.Register(api, mm, pub)

	return app
}
