package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/type/response"
	"github.com/sunthewhat/koa-member-api/type/shared"
)

func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Warn("JWT validation failure",
				"error", err,
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "JWT validation failure")
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("auth").(*jwt.Token)
			if !ok {
				return response.SendUnauthorized(c, "Invalid token context")
			}
			claims, ok := token.Claims.(*shared.UserClaims)
			if !ok || claims.KoalmNumber() == "" {
				return response.SendUnauthorized(c, "Invalid token claims")
			}

			c.Locals("user_id", claims.KoalmNumber())
			c.Locals("user_role", claims.EffectiveRole())

			return c.Next()
		},
	}
	return jwtware.New(conf)
}
