package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/depaudit/internal/config"
	"github.com/ethanolivertroy/depaudit/internal/logging"
	"github.com/ethanolivertroy/depaudit/internal/models"
)

var (
	flagPath       string
	flagConfig     string
	flagVerbose    int
	flagQuiet      bool
	flagOutput     string
	flagFormat     string
	flagJSON       bool
	flagStructured bool
	flagInventory  string
)

// errIssuesFound makes Execute exit 1 without printing anything
var errIssuesFound = errors.New("dependency issues found")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "depaudit",
	Short: "Find missing, unused and not-installed project dependencies",
	Long: `depaudit scans your source files for package references and reconciles
them against the project manifest and the installed packages.

It reports three kinds of issues:
  - Missing: imported in code but not declared in the manifest
  - Unused: declared but never referenced (dev tooling is never flagged)
  - Not installed: declared but absent from the installed inventory

Supported manifests:
  package.json, composer.json, requirements.txt, Pipfile, pyproject.toml,
  Gemfile, Cargo.toml, go.mod, pom.xml, build.gradle, *.csproj, pubspec.yaml

Examples:
  # Check the current directory
  depaudit

  # Check another project and emit JSON
  depaudit check -p ./services/api --json

  # Output SARIF for GitHub Code Scanning
  depaudit check --format sarif --output results.sarif

  # Use package-lock.json instead of running npm
  depaudit check --inventory lockfile

  # Install missing packages and remove unused ones
  depaudit fix`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errIssuesFound) {
		return 1
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 2
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPath, "path", "p", ".", "Workspace root to analyze")
	pf.StringVar(&flagConfig, "config", "", "Config file (default: <path>/.depaudit.{yaml,json,toml})")
	pf.CountVarP(&flagVerbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.BoolVar(&flagQuiet, "quiet", false, "Suppress all logs")
	pf.StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	pf.StringVarP(&flagFormat, "format", "f", "terminal", "Output format: terminal, json, sarif")
	pf.BoolVar(&flagJSON, "json", false, "Shorthand for --format json")
	pf.BoolVar(&flagStructured, "structured", false, "Parse TOML/YAML/XML/go.mod manifests with format-aware parsers")
	pf.StringVar(&flagInventory, "inventory", "npm", "Installed package source: npm, lockfile, none")

	addCheckFlags(rootCmd)
}

// setup loads configuration for the selected workspace, applies flag
// overrides and builds the logger
func setup(cmd *cobra.Command) (*models.Config, *slog.Logger, error) {
	root, err := filepath.Abs(flagPath)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid path %q: %w", flagPath, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read workspace: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("workspace %s is not a directory", root)
	}

	// .env is optional
	_ = godotenv.Load(filepath.Join(root, ".env"))
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig, root)
	if err != nil {
		return nil, nil, err
	}
	applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	level := logging.LevelFromVerbosity(logging.ParseLevel(cfg.Log.Level), flagVerbose, flagQuiet)
	logger := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	logger.Debug("configuration loaded", "root", cfg.Root, "format", cfg.OutputFormat, "inventory", cfg.Inventory.Source)

	return cfg, logger, nil
}

// applyFlags copies explicitly set flags over config values
func applyFlags(cmd *cobra.Command, cfg *models.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.OutputFormat = flagFormat
	}
	if flagJSON {
		cfg.OutputFormat = "json"
	}
	if flags.Changed("output") {
		cfg.OutputFile = flagOutput
	}
	if flags.Changed("structured") {
		cfg.Manifests.Structured = flagStructured
	}
	if flags.Changed("inventory") {
		cfg.Inventory.Source = flagInventory
	}
	if flags.Changed("ai") {
		cfg.AI.Enabled = flagAI
	}
	if flags.Changed("no-fail") {
		cfg.FailOnIssues = !flagNoFail
	}
}
