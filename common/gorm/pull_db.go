package gorm

import (
	"log/slog"

	"github.com/sunthewhat/koa-member-api/type/shared/model"
	"gorm.io/gen"
)

const queryOutPath = "./type/shared/query"

// Pull_db regenerates the typed query package from the member model. The
// model is the source of truth, so no database connection is needed.
func Pull_db() {
	g := gen.NewGenerator(
		gen.Config{
			OutPath: queryOutPath,
			Mode:    gen.WithoutContext,
		},
	)

	g.ApplyBasic(model.Member{})

	g.Execute()

	slog.Info("Query package generated", "path", queryOutPath)
}
