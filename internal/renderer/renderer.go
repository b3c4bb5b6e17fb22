package renderer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/common/config"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/shared"
)

// InitRenderer builds the badge pipeline from common.Config and stores it in
// common.Badge. MinIO must be initialised first when the template lives in a
// bucket.
func InitRenderer() {
	pipeline, err := NewBadgePipeline(common.Config, prometheus.DefaultRegisterer)
	if err != nil {
		slog.Error("Failed to initialize badge renderer", "error", err)
		os.Exit(1)
	}

	common.Badge = pipeline
	slog.Info("Badge renderer initialized")
}

func NewBadgePipeline(cfg *shared.Config, reg prometheus.Registerer) (*badge.Pipeline, error) {
	opts := []badge.Option{
		badge.WithMetrics(badge.NewMetrics(reg)),
	}

	if signerCfg, enabled := config.SignerConfig(cfg); enabled {
		signer, err := badge.NewPDFSigner(signerCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize badge signer: %w", err)
		}
		opts = append(opts, badge.WithSigner(signer))
		slog.Info("Badge signing enabled")
	}

	return badge.NewPipeline(
		config.BadgeConfig(cfg),
		badge.NewCachedTemplateSource(TemplateSource(cfg)),
		opts...,
	)
}

// TemplateSource reads the template from MinIO when an object is configured,
// otherwise from the local path.
func TemplateSource(cfg *shared.Config) badge.TemplateSource {
	if cfg.TemplateObject != nil && *cfg.TemplateObject != "" {
		return badge.NewMinioTemplateSource(common.MinIOClient, *cfg.TemplateBucket, *cfg.TemplateObject)
	}
	return badge.NewFileTemplateSource(*cfg.TemplatePath)
}
