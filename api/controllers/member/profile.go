package member_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/type/payload"
	"github.com/sunthewhat/koa-member-api/type/response"
)

func (ctrl *MemberController) GetProfile(c *fiber.Ctx) error {
	koalm, ok := targetKoalm(c)
	if !ok {
		slog.Error("Member GetProfile failed to get user from context")
		return response.SendUnauthorized(c, "Invalid token context")
	}

	member, err := ctrl.memberRepo.GetByKoalm(koalm)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if member == nil {
		return response.SendNotFound(c, "Member profile not found")
	}

	return response.SendSuccess(c, "Member profile found", member.Profile())
}

func (ctrl *MemberController) UpdateProfile(c *fiber.Ctx) error {
	body := new(payload.UpdateProfilePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	if body.Photo != nil {
		if err := util.ValidatePhoto(*body.Photo); err != nil {
			slog.Warn("Rejected member photo", "error", err)
			return response.SendFailed(c, "photo must be a base64 encoded image")
		}
	}

	koalm, ok := targetKoalm(c)
	if !ok {
		slog.Error("Member UpdateProfile failed to get user from context")
		return response.SendUnauthorized(c, "Invalid token context")
	}

	member, err := ctrl.memberRepo.GetByKoalm(koalm)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if member == nil {
		return response.SendNotFound(c, "Member profile not found")
	}

	if err := ctrl.memberRepo.UpdateProfile(koalm, body.Changes()); err != nil {
		return response.SendError(c, "Failed to update member profile")
	}

	updated, err := ctrl.memberRepo.GetByKoalm(koalm)
	if err != nil || updated == nil {
		return response.SendError(c, "Failed to load updated member profile")
	}

	userId, _ := middleware.GetUserFromContext(c)
	slog.Info("Member profile updated", "koalm", koalm, "user_id", userId, "photo_changed", body.Photo != nil)
	return response.SendSuccess(c, "Member profile updated", updated.Profile())
}
