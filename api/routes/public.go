package routes

import (
	"github.com/gofiber/fiber/v2"
	public_controller "github.com/sunthewhat/koa-member-api/api/controllers/public"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/common"
)

func SetupPublicRoutes(router fiber.Router) {
	memberRepo := membermodel.NewMemberRepository(common.Gorm)

	publicCtrl := public_controller.NewPublicController(memberRepo)

	publicGroup := router.Group("public")

	publicGroup.Get("member/:koalm", publicCtrl.GetProfile)
}
