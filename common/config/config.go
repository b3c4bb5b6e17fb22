package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/internal/badge"
	"github.com/sunthewhat/koa-member-api/type/shared"
	"gopkg.in/yaml.v3"
)

func LoadConfig(path string) {
	yml, readErr := os.ReadFile(path)
	if readErr != nil {
		slog.Error("Failed to read config", "path", path, "error", readErr)
		os.Exit(1)
	}

	config, parseErr := Parse(yml)
	if parseErr != nil {
		slog.Error("Invalid config", "path", path, "error", parseErr)
		os.Exit(1)
	}

	common.Config = config
}

func Parse(yml []byte) (*shared.Config, error) {
	config := new(shared.Config)

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		if problems := util.GetValidationErrors(validateErr); len(problems) > 0 {
			return nil, fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
		}
		return nil, validateErr
	}

	return config, nil
}

// BadgeConfig builds the render configuration, starting from the default
// layout and applying any overrides from config.yml.
func BadgeConfig(config *shared.Config) badge.Config {
	layout := badge.DefaultLayout()
	if config.ScanCodeVersion != nil {
		layout.ScanVersion = *config.ScanCodeVersion
	}
	if config.LayoutBorder != nil {
		layout.Border = *config.LayoutBorder
	}
	if config.LayoutRadius != nil {
		layout.InnerRadius = *config.LayoutRadius
	}

	return badge.Config{
		Layout:        layout,
		PublicURLBase: *config.PublicURLBase,
	}
}

// SignerConfig returns the signing setup, or false when signing is off.
func SignerConfig(config *shared.Config) (badge.SignerConfig, bool) {
	if config.SigningEnabled == nil || !*config.SigningEnabled {
		return badge.SignerConfig{}, false
	}
	signer := badge.SignerConfig{}
	if config.SigningCertPath != nil {
		signer.CertPath = *config.SigningCertPath
	}
	if config.SigningKeyPath != nil {
		signer.KeyPath = *config.SigningKeyPath
	}
	return signer, true
}
