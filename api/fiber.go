package api

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sunthewhat/koa-member-api/api/handler"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	"github.com/sunthewhat/koa-member-api/api/routes"
	"github.com/sunthewhat/koa-member-api/common"
)

// NewApp wires middleware and routes. Routes resolve their repositories from
// the common globals, so config must be loaded first.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "koa member api",
		ErrorHandler:  handler.HandleError,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		// A badge render is bounded by the controller timeout; leave headroom for transfer.
		WriteTimeout: 45 * time.Second,
		ReadTimeout:  15 * time.Second,
	})

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app)

	app.Use(handler.HandleNotFound)
	return app
}

func InitFiber() {
	app := NewApp()

	slog.Info("Starting server", "port", *common.Config.Port)
	if err := app.Listen(*common.Config.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
