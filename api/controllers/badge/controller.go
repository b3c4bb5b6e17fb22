package badge_controller

import (
	"context"
	"log/slog"
	"time"

	activitymodel "github.com/sunthewhat/koa-member-api/api/model/activityModel"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/internal/renderer"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
)

const renderTimeout = 30 * time.Second

// BadgeRenderer produces a badge document for one member.
type BadgeRenderer = renderer.BadgeRenderer

// BadgeArchiver stores a copy of a rendered badge and returns its object key.
type BadgeArchiver interface {
	Archive(ctx context.Context, koalm string, content []byte) (string, error)
}

// BadgeMailer delivers a rendered badge as a mail attachment.
type BadgeMailer interface {
	SendBadgeMail(recipient string, name string, filename string, content []byte) error
}

// BadgeController handles badge-related HTTP requests
type BadgeController struct {
	memberRepo   membermodel.IMemberRepository
	activityRepo activitymodel.IActivityRepository
	renderer     BadgeRenderer
	archiver     BadgeArchiver
	mailer       BadgeMailer
}

// NewBadgeController creates a new badge controller with injected dependencies.
// archiver may be nil when no badge bucket is configured.
func NewBadgeController(
	memberRepo membermodel.IMemberRepository,
	activityRepo activitymodel.IActivityRepository,
	badgeRenderer BadgeRenderer,
	archiver BadgeArchiver,
	mailer BadgeMailer,
) *BadgeController {
	return &BadgeController{
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		renderer:     badgeRenderer,
		archiver:     archiver,
		mailer:       mailer,
	}
}

func (ctrl *BadgeController) render(ctx context.Context, member *model.Member, action string, requestedBy string) (*badge.RenderedBadge, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	rendered, renderErr := ctrl.renderer.Render(ctx, renderer.MemberInput(member))

	ctrl.audit(member.KoalmNumber, action, requestedBy, rendered, renderErr)

	if renderErr != nil {
		return nil, renderErr
	}

	ctrl.archive(ctx, member.KoalmNumber, rendered.Content)
	return rendered, nil
}

func (ctrl *BadgeController) audit(koalm string, action string, requestedBy string, rendered *badge.RenderedBadge, renderErr error) {
	activity := activitymodel.FromRender(koalm, action, requestedBy, rendered, renderErr)

	if err := ctrl.activityRepo.Record(activity); err != nil {
		slog.Warn("Badge activity could not be recorded", "error", err, "koalm", koalm, "action", action)
	}
}

func (ctrl *BadgeController) archive(ctx context.Context, koalm string, content []byte) {
	if ctrl.archiver == nil {
		return
	}

	objectName, err := ctrl.archiver.Archive(ctx, koalm, content)
	if err != nil {
		slog.Warn("Badge archive upload failed", "error", err, "koalm", koalm)
		return
	}

	slog.Info("Badge archived", "koalm", koalm, "object", objectName)
}
