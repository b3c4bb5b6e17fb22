package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sunthewhat/koa-member-api/common"
)

func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			slog.Error("Recovered from panic", "panic", e, "path", c.Path(), "method", c.Method())
		},
	})
}

func Cors() fiber.Handler {
	var origins []string
	if common.Config != nil {
		for _, origin := range common.Config.Cors {
			if origin != nil && *origin != "" {
				origins = append(origins, *origin)
			}
		}
	}

	conf := cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}
	if len(origins) > 0 {
		conf.AllowOrigins = strings.Join(origins, ",")
		conf.AllowCredentials = true
	}
	return cors.New(conf)
}
