package models

import "time"

// Config holds configuration for an analysis run
type Config struct {
	// Root is the workspace directory to analyze
	Root string `mapstructure:"root"`

	// Ignore lists doublestar globs (relative to Root) excluded from scanning and manifest discovery
	Ignore []string `mapstructure:"ignore"`

	// Extra names appended to the built-in classifier tables
	DevOnly []string `mapstructure:"devOnly"`
	Exclude []string `mapstructure:"exclude"`

	Manifests ManifestConfig  `mapstructure:"manifests"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Scan      ScanConfig      `mapstructure:"scan"`
	Log       LogConfig       `mapstructure:"log"`
	AI        AIConfig        `mapstructure:"ai"`

	// Output settings
	OutputFormat string `mapstructure:"format"` // "terminal", "json", "sarif"
	OutputFile   string `mapstructure:"output"` // Optional output file path
	FailOnIssues bool   `mapstructure:"failOnIssues"`
}

// ManifestConfig controls manifest parsing
type ManifestConfig struct {
	// Structured enables format-aware parsers for TOML/YAML/go.mod/XML manifests
	Structured bool `mapstructure:"structured"`
}

// InventoryConfig controls the installed-package lookup
type InventoryConfig struct {
	Source string `mapstructure:"source"` // "npm", "lockfile", "none"
}

// ScanConfig controls the reference scanner
type ScanConfig struct {
	Workers int `mapstructure:"workers"`
}

// LogConfig controls logger construction
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text", "json"
}

// AIConfig controls the optional advisor
type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Model    string        `mapstructure:"model"`
	CacheTTL time.Duration `mapstructure:"cacheTTL"`
	NoCache  bool          `mapstructure:"noCache"`
}

// DefaultIgnore are the globs skipped when none are configured
var DefaultIgnore = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.git/**",
	"**/vendor/**",
	"**/__pycache__/**",
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Root:         ".",
		Ignore:       append([]string(nil), DefaultIgnore...),
		Inventory:    InventoryConfig{Source: "npm"},
		Scan:         ScanConfig{Workers: 8},
		Log:          LogConfig{Level: "warn", Format: "text"},
		AI:           AIConfig{Model: "gemini-2.5-flash", CacheTTL: 24 * time.Hour},
		OutputFormat: "terminal",
		FailOnIssues: true,
	}
}
