package badge_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/api/handler"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	activitymodel "github.com/sunthewhat/koa-member-api/api/model/activityModel"
	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/type/payload"
	"github.com/sunthewhat/koa-member-api/type/response"
)

func (ctrl *BadgeController) Mail(c *fiber.Ctx) error {
	body := new(payload.MailBadgePayload)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(body); err != nil {
			return response.SendError(c, "Failed to parse body")
		}
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		slog.Error("Badge Mail failed to get user from context")
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

	recipient := member.Email
	if body.Email != "" && body.Email != member.Email {
		if !middleware.IsAdmin(c) {
			slog.Warn("Member tried to mail a badge to another address", "user_id", userId, "koalm", koalm)
			return response.SendForbidden(c, "Only admins can send a badge to another address")
		}
		recipient = body.Email
	}
	if recipient == "" {
		return response.SendFailed(c, "Member has no email address")
	}

	rendered, err := ctrl.render(c.UserContext(), member, activitymodel.ActionMail, userId)
	if err != nil {
		status, msg := handler.BadgeErrorStatus(err)
		return c.Status(status).JSON(response.Error(msg))
	}

	if err := ctrl.mailer.SendBadgeMail(recipient, member.Name, rendered.Filename, rendered.Content); err != nil {
		return response.SendError(c, "Failed to send badge mail")
	}

	return response.SendSuccess(c, "Badge sent", fiber.Map{
		"recipient": recipient,
		"filename":  rendered.Filename,
	})
}
