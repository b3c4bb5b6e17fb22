package routes

import (
	"github.com/gofiber/fiber/v2"
	member_controller "github.com/sunthewhat/koa-member-api/api/controllers/member"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/common"
)

func SetupMemberRoutes(router fiber.Router) {
	memberRepo := membermodel.NewMemberRepository(common.Gorm)

	memberCtrl := member_controller.NewMemberController(memberRepo)

	memberGroup := router.Group("member")

	memberGroup.Use(middleware.Jwt())

	memberGroup.Get("profile", memberCtrl.GetProfile)
	memberGroup.Put("profile", memberCtrl.UpdateProfile)
	memberGroup.Patch("profile", memberCtrl.UpdateProfile)

	memberGroup.Get("profile/:koalm", middleware.RequireSelfOrAdmin("koalm"), memberCtrl.GetProfile)
	memberGroup.Put("profile/:koalm", middleware.RequireSelfOrAdmin("koalm"), memberCtrl.UpdateProfile)
	memberGroup.Patch("profile/:koalm", middleware.RequireSelfOrAdmin("koalm"), memberCtrl.UpdateProfile)
}
