package routes

import (
	"github.com/gofiber/fiber/v2"
	badge_controller "github.com/sunthewhat/koa-member-api/api/controllers/badge"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	activitymodel "github.com/sunthewhat/koa-member-api/api/model/activityModel"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/common/util"
)

func SetupBadgeRoutes(router fiber.Router) {
	// Initialize repositories
	memberRepo := membermodel.NewMemberRepository(common.Gorm)
	activityRepo := activitymodel.NewActivityRepository(common.Mongo)

	var archiver badge_controller.BadgeArchiver
	if common.MinIOClient != nil && common.Config.BadgeBucket != nil && *common.Config.BadgeBucket != "" {
		archiver = util.NewBadgeArchive(*common.Config.BadgeBucket)
	}
	mailer := util.NewBadgeMailer(*common.Config.MailUser)

	// Initialize controller with repositories
	badgeCtrl := badge_controller.NewBadgeController(memberRepo, activityRepo, common.Badge, archiver, mailer)

	badgeGroup := router.Group("badge")

	badgeGroup.Use(middleware.Jwt())

	badgeGroup.Get("download/:koalm", middleware.RequireSelfOrAdmin("koalm"), badgeCtrl.Download)
	badgeGroup.Post("mail/:koalm", middleware.RequireSelfOrAdmin("koalm"), badgeCtrl.Mail)
	badgeGroup.Get("activity/:koalm", middleware.RequireSelfOrAdmin("koalm"), badgeCtrl.Activity)
}
