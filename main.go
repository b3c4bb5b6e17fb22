package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sunthewhat/koa-member-api/api"
	activitymodel "github.com/sunthewhat/koa-member-api/api/model/activityModel"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/common/config"
	"github.com/sunthewhat/koa-member-api/common/gorm"
	"github.com/sunthewhat/koa-member-api/common/mongo"
	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/internal/renderer"
	"github.com/sunthewhat/koa-member-api/type/shared"
)

func main() {
	configPath := flag.String("Config", "config.yml", "Path to config file")
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isPullDB := flag.Bool("PullDB", false, "Regenerate the typed query package")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	importFile := flag.String("Import", "", "Import members from a directory CSV export")
	badgeKoalm := flag.String("Badge", "", "Render the badge of one member and exit")
	badgeOut := flag.String("Out", "", "Output file for -Badge (default: badge filename)")
	badgeAllDir := flag.String("BadgeAll", "", "Render the badges of all active members into a directory and exit")
	tokenKoalm := flag.String("Token", "", "Issue an auth token for one member and exit")
	tokenRole := flag.String("Role", shared.RoleMember, "Role for -Token (member or admin)")
	flag.Parse()
	config.LoadConfig(*configPath)

	if *tokenKoalm != "" {
		issueToken(*tokenKoalm, *tokenRole)
		return
	}

	if *isPushDB || *isPullDB || *importFile != "" {
		if *isPullDB {
			gorm.Pull_db()
		}
		if *isPushDB {
			gorm.Push_db()
		}
		if *importFile != "" {
			gorm.InitGorm()
			importMembers(*importFile)
		}
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()
	initStorage()
	renderer.InitRenderer()

	if *badgeKoalm != "" {
		renderBadge(*badgeKoalm, *badgeOut)
		return
	}

	if *badgeAllDir != "" {
		renderAllBadges(*badgeAllDir)
		return
	}

	startArchiveCleanup()
	util.InitDialer()
	api.InitFiber()
}

// initStorage connects MinIO when it is configured. Without it the template
// must be a local file and badges are not archived.
func initStorage() {
	if common.Config.MinIoEndpoint == nil {
		slog.Info("MinIO not configured, badge archive disabled")
		return
	}

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}
	slog.Info("MinIO Connected!")
}

func startArchiveCleanup() {
	if common.MinIOClient == nil || common.Config.BadgeBucket == nil || *common.Config.BadgeBucket == "" {
		return
	}

	days := 365
	if common.Config.BadgeArchiveDays != nil {
		days = *common.Config.BadgeArchiveDays
	}
	util.StartArchiveCleanupJob(*common.Config.BadgeBucket, time.Duration(days)*24*time.Hour)
}

func importMembers(path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open member CSV", "path", path, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	members, skipped, err := util.ParseMemberCSV(file)
	if err != nil {
		slog.Error("Failed to parse member CSV", "path", path, "error", err)
		os.Exit(1)
	}

	repo := membermodel.NewMemberRepository(common.Gorm)
	failed := 0
	for _, member := range members {
		if err := repo.Upsert(member); err != nil {
			failed++
		}
	}

	slog.Info("Member import completed", "imported", len(members)-failed, "failed", failed, "skipped", skipped)
}

func renderBadge(koalm string, out string) {
	member, err := membermodel.NewMemberRepository(common.Gorm).GetByKoalm(koalm)
	if err != nil {
		os.Exit(1)
	}
	if member == nil {
		slog.Error("Member not found", "koalm", koalm)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rendered, renderErr := common.Badge.Render(ctx, renderer.MemberInput(member))

	activity := activitymodel.FromRender(koalm, activitymodel.ActionCLI, "cli", rendered, renderErr)
	_ = activitymodel.NewActivityRepository(common.Mongo).Record(activity)

	if renderErr != nil {
		os.Exit(1)
	}

	if out == "" {
		if err := renderer.SafeFilename(rendered.Filename); err != nil {
			slog.Error("Refusing to write badge", "koalm", koalm, "error", err)
			os.Exit(1)
		}
		out = rendered.Filename
	}
	if err := os.WriteFile(out, rendered.Content, 0o644); err != nil {
		slog.Error("Failed to write badge", "path", out, "error", err)
		os.Exit(1)
	}

	slog.Info("Badge written", "koalm", koalm, "path", out, "size", len(rendered.Content))
}

func renderAllBadges(dir string) {
	members, err := membermodel.NewMemberRepository(common.Gorm).ListActive()
	if err != nil {
		os.Exit(1)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "path", dir, "error", err)
		os.Exit(1)
	}

	results := renderer.RenderAll(context.Background(), common.Badge, members, renderer.DirWriter(dir))

	activityRepo := activitymodel.NewActivityRepository(common.Mongo)
	for _, result := range results {
		_ = activityRepo.Record(activitymodel.FromRender(result.KoalmNumber, activitymodel.ActionCLI, "cli", result.Badge, result.Error))
	}
}

func issueToken(koalm string, role string) {
	if role != shared.RoleMember && role != shared.RoleAdmin {
		slog.Error("Unknown role", "role", role)
		os.Exit(1)
	}

	token, err := util.GenerateAuthToken(koalm, role)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		os.Exit(1)
	}

	os.Stdout.WriteString(token + "\n")
}
