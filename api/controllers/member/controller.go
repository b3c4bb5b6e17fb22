package member_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
)

// MemberController serves a member's own profile. Admins reach other members
// through the :koalm routes.
type MemberController struct {
	memberRepo membermodel.IMemberRepository
}

// NewMemberController creates a new member controller with injected dependencies
func NewMemberController(memberRepo membermodel.IMemberRepository) *MemberController {
	return &MemberController{memberRepo: memberRepo}
}

// targetKoalm is the :koalm route parameter when present, otherwise the caller.
func targetKoalm(c *fiber.Ctx) (string, bool) {
	if koalm := c.Params("koalm"); koalm != "" {
		return koalm, true
	}
	return middleware.GetUserFromContext(c)
}
