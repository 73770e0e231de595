package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/depaudit/internal/checker"
	"github.com/ethanolivertroy/depaudit/internal/parsers"
	"github.com/ethanolivertroy/depaudit/internal/pkgmgr"
)

var flagDryRun bool

// pkgRunner executes package manager commands; nil runs them for real
var pkgRunner pkgmgr.Runner

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Install missing packages and remove unused ones",
	Long: `Analyze the workspace, then install every missing or not-installed
package and uninstall every unused one with the manifest's package manager.

Supported package managers: npm, composer, pip, cargo, go, bundler.`,
	Args: cobra.NoArgs,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the planned commands without running them")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	c, err := checker.New(cfg, checker.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize checker: %w", err)
	}
	result, err := c.Analyze(cmd.Context())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	m, err := pkgmgr.New(parsers.EcosystemFor(result.Manifest), cfg.Root, pkgRunner, logger)
	if err != nil {
		return err
	}

	plan, err := m.Fix(cmd.Context(), result, flagDryRun)
	printPlan(cmd.OutOrStdout(), m.Tool(), plan, flagDryRun)
	if err != nil {
		return err
	}
	if !flagDryRun && !plan.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Dependencies fixed")
	}
	return nil
}

func printPlan(w io.Writer, tool string, plan pkgmgr.Plan, dryRun bool) {
	if plan.Empty() {
		fmt.Fprintln(w, "✅ Nothing to fix")
		return
	}
	prefix := ""
	if dryRun {
		prefix = "[dry-run] "
	}
	if len(plan.Install) > 0 {
		fmt.Fprintf(w, "%s📦 Installing with %s: %s\n", prefix, tool, strings.Join(plan.Install, ", "))
	}
	if len(plan.Uninstall) > 0 {
		fmt.Fprintf(w, "%s🗑️  Removing with %s: %s\n", prefix, tool, strings.Join(plan.Uninstall, ", "))
	}
}
