package public_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/type/response"
)

func (ctrl *PublicController) GetProfile(c *fiber.Ctx) error {
	koalm := c.Params("koalm")

	member, err := ctrl.memberRepo.GetByKoalm(koalm)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if member == nil || !member.IsActive {
		slog.Info("Public profile not found", "koalm", koalm)
		return response.SendNotFound(c, "Member not found")
	}

	return response.SendSuccess(c, "Member found", member.PublicProfile())
}
