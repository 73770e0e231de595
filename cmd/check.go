package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/depaudit/internal/advisor"
	"github.com/ethanolivertroy/depaudit/internal/cache"
	"github.com/ethanolivertroy/depaudit/internal/checker"
	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/reporter"
	"github.com/ethanolivertroy/depaudit/internal/watch"
	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

var (
	flagAI     bool
	flagNoFail bool
	flagWatch  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze the workspace and report dependency issues",
	Long: `Analyze the workspace and report dependency issues.

Exits 1 when issues are found unless --no-fail is set.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagAI, "ai", false, "Ask Gemini for upgrade, security and code advice (needs GEMINI_API_KEY)")
	cmd.Flags().BoolVar(&flagNoFail, "no-fail", false, "Don't exit with error code if issues are found")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-run the analysis whenever files change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []checker.Option{checker.WithLogger(logger)}
	if cfg.AI.Enabled {
		if a := newAdvisor(ctx, cfg, logger); a != nil {
			opts = append(opts, checker.WithAdvisor(a))
		}
	}

	c, err := checker.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize checker: %w", err)
	}
	rep, err := reporter.Get(cfg.OutputFormat, cfg.Root)
	if err != nil {
		return err
	}

	result, err := c.Analyze(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if err := writeReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, rep, result); err != nil {
		return err
	}

	if flagWatch {
		return watchAndCheck(ctx, cmd, cfg, c, rep, logger)
	}

	if result.IssueCount() > 0 && cfg.FailOnIssues {
		return errIssuesFound
	}
	return nil
}

func watchAndCheck(ctx context.Context, cmd *cobra.Command, cfg *models.Config, c *checker.Checker, rep reporter.Reporter, logger *slog.Logger) error {
	ignore, err := workspace.NewMatcher(cfg.Ignore)
	if err != nil {
		return err
	}
	w, err := watch.New(cfg.Root, ignore, watch.DefaultDebounce, logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	w.Skip(cfg.OutputFile)

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", cfg.Root)
	return w.Run(ctx, func() {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n[%s] Change detected, re-analyzing...\n", time.Now().Format("15:04:05"))
		result, err := c.Analyze(ctx)
		if err != nil {
			logger.Error("analysis failed", "error", err)
			return
		}
		if err := writeReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, rep, result); err != nil {
			logger.Error("failed to write report", "error", err)
		}
	})
}

// newAdvisor returns nil when the advisor cannot be created; the analysis
// then runs without advice
func newAdvisor(ctx context.Context, cfg *models.Config, logger *slog.Logger) advisor.Advisor {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, skipping AI analysis")
		return nil
	}

	var c *cache.Cache
	if !cfg.AI.NoCache {
		var err error
		c, err = cache.New("depaudit", cfg.AI.CacheTTL)
		if err != nil {
			logger.Warn("failed to open advice cache", "error", err)
			c = nil
		}
	}

	a, err := advisor.NewGemini(ctx, apiKey, cfg.AI.Model, c, logger)
	if err != nil {
		logger.Warn("failed to create advisor", "error", err)
		return nil
	}
	return a
}

// writeReport renders result to cfg.OutputFile, or stdout when unset
func writeReport(stdout, stderr io.Writer, cfg *models.Config, rep reporter.Reporter, result *models.DependencyResult) error {
	output, err := rep.Report(result)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(stderr, "Report written to %s\n", cfg.OutputFile)
		return nil
	}
	_, err = stdout.Write(output)
	return err
}
