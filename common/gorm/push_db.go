package gorm

import (
	"log/slog"
	"os"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
	"gorm.io/gorm"
)

// Push_db migrates the primary database. It always talks to the primary,
// never to a read replica.
func Push_db() {
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
		slogGorm.WithTraceAll(),
	)

	db, err := gorm.Open(connector(*common.Config.Postgres), &gorm.Config{
		Logger: lg,
	})

	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := Migrate(db); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed successfully")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		new(model.Member),
	)
}
