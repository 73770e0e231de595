// Package config loads analysis settings from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// FileName is the config file looked up in the workspace root, with any
// extension viper supports (.yaml, .yml, .json, .toml).
const FileName = ".depaudit"

// EnvPrefix prefixes environment overrides, e.g. DEPAUDIT_INVENTORY_SOURCE
const EnvPrefix = "DEPAUDIT"

// Load reads configuration for the workspace at root. An explicit path must
// exist; otherwise a missing config file means defaults. Environment
// variables override file values.
func Load(path, root string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(root)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := models.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if root != "" {
		cfg.Root = root
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultConfig()
	v.SetDefault("root", d.Root)
	v.SetDefault("ignore", d.Ignore)
	v.SetDefault("devOnly", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("manifests.structured", d.Manifests.Structured)
	v.SetDefault("inventory.source", d.Inventory.Source)
	v.SetDefault("scan.workers", d.Scan.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("ai.enabled", d.AI.Enabled)
	v.SetDefault("ai.model", d.AI.Model)
	v.SetDefault("ai.cacheTTL", d.AI.CacheTTL)
	v.SetDefault("ai.noCache", d.AI.NoCache)
	v.SetDefault("format", d.OutputFormat)
	v.SetDefault("output", d.OutputFile)
	v.SetDefault("failOnIssues", d.FailOnIssues)
}

// Validate rejects settings that cannot be acted on
func Validate(cfg *models.Config) error {
	switch cfg.Inventory.Source {
	case "npm", "lockfile", "none":
	default:
		return fmt.Errorf("invalid inventory.source %q (supported: npm, lockfile, none)", cfg.Inventory.Source)
	}
	switch cfg.OutputFormat {
	case "terminal", "json", "sarif":
	default:
		return fmt.Errorf("invalid format %q (supported: terminal, json, sarif)", cfg.OutputFormat)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q (supported: text, json)", cfg.Log.Format)
	}
	if cfg.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be at least 1, got %d", cfg.Scan.Workers)
	}
	return nil
}
