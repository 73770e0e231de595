// Package inventory reports which packages are installed in a workspace.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/parsers"
)

// Provider lists the top-level packages installed in a workspace
type Provider interface {
	Installed(ctx context.Context, root string) ([]string, error)
}

// Runner executes a command in dir and returns its standard output
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

// ErrUnavailable is returned by providers that never have an inventory
var ErrUnavailable = errors.New("installed inventory unavailable")

// NpmProvider runs `npm list --depth=0 --json`
type NpmProvider struct {
	Run Runner // defaults to ExecRunner
}

// npmListing is the subset of npm list output that matters
type npmListing struct {
	Dependencies map[string]json.RawMessage `json:"dependencies"`
}

// Installed returns the keys of the listing's dependencies map. npm exits
// non-zero when the tree has problems (missing or extraneous packages) but
// still prints the listing; that output is accepted.
func (p *NpmProvider) Installed(ctx context.Context, root string) ([]string, error) {
	run := p.Run
	if run == nil {
		run = ExecRunner
	}

	out, runErr := run(ctx, root, "npm", "list", "--depth=0", "--json")
	names, err := parseNpmListing(out)
	if err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("npm list failed: %w", runErr)
		}
		return nil, fmt.Errorf("failed to parse npm list output: %w", err)
	}
	return names, nil
}

func parseNpmListing(out []byte) ([]string, error) {
	if len(strings.TrimSpace(string(out))) == 0 {
		return nil, errors.New("empty output")
	}
	var listing npmListing
	if err := json.Unmarshal(out, &listing); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(listing.Dependencies))
	for name := range listing.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LockfileProvider reads package-lock.json instead of invoking npm
type LockfileProvider struct{}

// Installed returns the top-level packages recorded in the lockfile
func (p *LockfileProvider) Installed(ctx context.Context, root string) ([]string, error) {
	content, err := os.ReadFile(filepath.Join(root, "package-lock.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile: %w", err)
	}
	names, err := parsers.ParsePackageLock(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lockfile: %w", err)
	}
	return names, nil
}

// NoneProvider never has an inventory
type NoneProvider struct{}

// Installed always fails
func (NoneProvider) Installed(ctx context.Context, root string) ([]string, error) {
	return nil, ErrUnavailable
}

// Static is a fixed inventory
type Static []string

// Installed returns the fixed list
func (s Static) Installed(ctx context.Context, root string) ([]string, error) {
	return append([]string(nil), s...), nil
}

// ForSource returns the provider for an inventory.source setting
func ForSource(source string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", "npm":
		return &NpmProvider{}, nil
	case "lockfile":
		return &LockfileProvider{}, nil
	case "none":
		return NoneProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown inventory source %q (supported: npm, lockfile, none)", source)
	}
}

// Resolve queries the provider and returns the installed set. Any failure is
// logged and yields an empty set, so every declared package is then reported
// as not installed.
func Resolve(ctx context.Context, p Provider, root string, logger *slog.Logger) map[string]bool {
	installed := make(map[string]bool)
	if p == nil {
		p = NoneProvider{}
	}

	names, err := p.Installed(ctx, root)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to list installed packages", "root", root, "error", err)
		}
		return installed
	}

	for _, name := range names {
		installed[name] = true
	}
	return installed
}
