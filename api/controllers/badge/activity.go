package badge_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/type/response"
)

const defaultActivityLimit = 20

func (ctrl *BadgeController) Activity(c *fiber.Ctx) error {
	koalm := c.Params("koalm")

	limit := c.QueryInt("limit", defaultActivityLimit)
	if limit <= 0 || limit > 100 {
		return response.SendFailed(c, "limit must be between 1 and 100")
	}

	activities, err := ctrl.activityRepo.ListByMember(koalm, int64(limit))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Badge activity fetched", activities)
}
