// Package checker runs a full dependency analysis of a workspace.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ethanolivertroy/depaudit/internal/advisor"
	"github.com/ethanolivertroy/depaudit/internal/classify"
	"github.com/ethanolivertroy/depaudit/internal/inventory"
	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/parsers"
	"github.com/ethanolivertroy/depaudit/internal/scanner"
	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

// ErrNoManifest is returned when the workspace has no package manifest
var ErrNoManifest = errors.New("no package manifest found in workspace")

// Checker orchestrates manifest parsing, reference scanning and inventory lookup
type Checker struct {
	config     *models.Config
	ignore     *workspace.Matcher
	classifier *classify.Classifier
	scanner    *scanner.Scanner
	inventory  inventory.Provider
	advisor    advisor.Advisor
	logger     *slog.Logger
}

// Option customizes a Checker
type Option func(*Checker)

// WithInventory overrides the provider selected by config.Inventory.Source
func WithInventory(p inventory.Provider) Option {
	return func(c *Checker) { c.inventory = p }
}

// WithAdvisor attaches an advisor whose output is added to every result
func WithAdvisor(a advisor.Advisor) Option {
	return func(c *Checker) { c.advisor = a }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// New creates a new Checker with the given configuration
func New(config *models.Config, opts ...Option) (*Checker, error) {
	if config == nil {
		config = models.DefaultConfig()
	}

	c := &Checker{
		config:     config,
		classifier: classify.New(config.Exclude, config.DevOnly),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	ignore, err := workspace.NewMatcher(config.Ignore)
	if err != nil {
		return nil, err
	}
	c.ignore = ignore

	c.scanner, err = scanner.New(scanner.Options{
		Ignore:     config.Ignore,
		Classifier: c.classifier,
		Workers:    config.Scan.Workers,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, err
	}

	if c.inventory == nil {
		c.inventory, err = inventory.ForSource(config.Inventory.Source)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Root returns the workspace being analyzed
func (c *Checker) Root() string {
	return c.config.Root
}

// Manifest returns the authoritative manifest of the workspace
func (c *Checker) Manifest(ctx context.Context) (string, error) {
	manifests, err := parsers.FindManifests(ctx, c.config.Root, c.ignore)
	if err != nil {
		return "", fmt.Errorf("failed to discover manifests: %w", err)
	}
	if len(manifests) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoManifest, c.config.Root)
	}
	if len(manifests) > 1 {
		c.logger.Debug("multiple manifests found, using the first", "manifest", manifests[0], "count", len(manifests))
	}
	return manifests[0], nil
}

// Analyze performs the full dependency analysis. Only a missing manifest or
// an unreadable workspace root is an error; every other failure degrades to
// an emptier result.
func (c *Checker) Analyze(ctx context.Context) (*models.DependencyResult, error) {
	manifest, err := c.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	var (
		info      models.PackageInfo
		scan      *models.ScanResult
		installed map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info = parsers.ParseManifest(manifest, c.config.Manifests.Structured, c.logger)
		return nil
	})
	g.Go(func() error {
		var err error
		scan, err = c.scanner.Scan(gctx, c.config.Root)
		return err
	})
	g.Go(func() error {
		installed = inventory.Resolve(gctx, c.inventory, c.config.Root, c.logger)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := Reconcile(info, scan, installed, c.classifier)
	result.Manifest = manifest

	c.logger.Info("analysis complete",
		"manifest", manifest,
		"declared", len(info.Declared()),
		"referenced", len(scan.Packages),
		"missing", len(result.Missing),
		"unused", len(result.Unused),
		"notInstalled", len(result.NotInstalled),
	)

	if c.advisor != nil {
		result.Advice = advisor.Enrich(ctx, c.advisor, result, c.logger)
	}

	return result, nil
}
