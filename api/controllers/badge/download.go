package badge_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/api/handler"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	activitymodel "github.com/sunthewhat/koa-member-api/api/model/activityModel"
	"github.com/sunthewhat/koa-member-api/type/response"
)

func (ctrl *BadgeController) Download(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		slog.Error("Badge Download failed to get user from context")
		return response.SendUnauthorized(c, "Invalid token context")
	}

	koalm := c.Params("koalm")

	member, err := ctrl.memberRepo.GetByKoalm(koalm)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if member == nil || !member.IsActive {
		return response.SendNotFound(c, "Member not found")
	}

	rendered, err := ctrl.render(c.UserContext(), member, activitymodel.ActionDownload, userId)
	if err != nil {
		status, msg := handler.BadgeErrorStatus(err)
		return c.Status(status).JSON(response.Error(msg))
	}

	return response.SendFile(c, rendered.Filename, rendered.ContentType(), rendered.Content)
}
