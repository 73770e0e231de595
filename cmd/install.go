package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/depaudit/internal/checker"
	"github.com/ethanolivertroy/depaudit/internal/parsers"
	"github.com/ethanolivertroy/depaudit/internal/pkgmgr"
)

var installCmd = &cobra.Command{
	Use:   "install <package>...",
	Short: "Install packages with the workspace's package manager",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPackageManager(cmd, args, "Installed", (*pkgmgr.Manager).Install)
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <package>...",
	Short: "Uninstall packages with the workspace's package manager",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPackageManager(cmd, args, "Uninstalled", (*pkgmgr.Manager).Uninstall)
	},
}

func init() {
	rootCmd.AddCommand(installCmd, uninstallCmd)
}

func runPackageManager(cmd *cobra.Command, names []string, verb string, action func(*pkgmgr.Manager, context.Context, ...string) error) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	c, err := checker.New(cfg, checker.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize checker: %w", err)
	}
	manifest, err := c.Manifest(cmd.Context())
	if err != nil {
		return err
	}

	m, err := pkgmgr.New(parsers.EcosystemFor(manifest), cfg.Root, pkgRunner, logger)
	if err != nil {
		return err
	}
	if err := action(m, cmd.Context(), names...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s %s\n", verb, strings.Join(names, ", "))
	return nil
}
