package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Init(router fiber.Router) {
	router.Get("metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := router.Group("api")

	SetupPublicRoutes(api)
	SetupBadgeRoutes(api)
	SetupMemberRoutes(api)
}
