package gorm

import (
	"log/slog"
	"os"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/type/shared/query"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

func InitGorm() {
	// Configure slog-gorm logger
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)

	// Open connection
	db, connectionErr := gorm.Open(connector(*common.Config.Postgres), &gorm.Config{
		Logger: lg,
	})

	if connectionErr != nil {
		slog.Error("Failed to connect to database", "error", connectionErr)
		os.Exit(1)
	}

	if replicas := replicaConnectors(common.Config.PostgresReplicas); len(replicas) > 0 {
		resolverErr := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if resolverErr != nil {
			slog.Error("Failed to register read replicas", "error", resolverErr)
			os.Exit(1)
		}
		slog.Info("GORM read replicas registered", "count", len(replicas))
	}

	slog.Info("GORM Connected!")

	common.Gorm = query.Use(db)
}

func connector(dsn string) gorm.Dialector {
	return postgres.New(
		postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		},
	)
}

func replicaConnectors(dsns []*string) []gorm.Dialector {
	var replicas []gorm.Dialector
	for _, dsn := range dsns {
		if dsn == nil || *dsn == "" {
			continue
		}
		replicas = append(replicas, connector(*dsn))
	}
	return replicas
}
