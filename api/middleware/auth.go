package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/type/response"
	"github.com/sunthewhat/koa-member-api/type/shared"
)

// GetUserFromContext - Helper function to extract the member KOALM number from request context
func GetUserFromContext(c *fiber.Ctx) (string, bool) {
	if userID := c.Locals("user_id"); userID != nil {
		if id, ok := userID.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

// GetRoleFromContext - Helper function to extract the caller role from request context
func GetRoleFromContext(c *fiber.Ctx) string {
	if role, ok := c.Locals("user_role").(string); ok {
		return role
	}
	return ""
}

// IsAdmin - Helper function to check if the caller is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetRoleFromContext(c) == shared.RoleAdmin
}

// RequireSelfOrAdmin only lets a member through to their own resources, keyed
// by the given route parameter. Admins may access any member.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := GetUserFromContext(c)
		if !ok {
			return response.SendUnauthorized(c, "Invalid token context")
		}

		target := c.Params(param)
		if IsAdmin(c) || userID == target {
			return c.Next()
		}

		slog.Warn("Member tried to access another member",
			"user_id", userID,
			"target", target,
			"path", c.Path(),
			"ip", c.IP())
		return response.SendForbidden(c, "You can only access your own member record")
	}
}
