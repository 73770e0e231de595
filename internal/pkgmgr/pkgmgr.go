// Package pkgmgr installs and removes packages through the workspace's package manager.
package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// ErrUnsupported is returned for manifest formats without a package manager mapping
var ErrUnsupported = errors.New("no package manager available for this manifest format")

// CommandError reports a failed package manager invocation
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes a command in dir and returns its combined output
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// tool describes one package manager CLI
type tool struct {
	name            string
	install         []string
	uninstall       []string
	uninstallSuffix string // appended to each name on uninstall
}

var tools = map[models.Ecosystem]tool{
	models.EcosystemNpm:      {name: "npm", install: []string{"install"}, uninstall: []string{"uninstall"}},
	models.EcosystemComposer: {name: "composer", install: []string{"require"}, uninstall: []string{"remove"}},
	models.EcosystemPyPI:     {name: "pip", install: []string{"install"}, uninstall: []string{"uninstall", "-y"}},
	models.EcosystemCargo:    {name: "cargo", install: []string{"add"}, uninstall: []string{"remove"}},
	models.EcosystemGo:       {name: "go", install: []string{"get"}, uninstall: []string{"get"}, uninstallSuffix: "@none"},
	models.EcosystemRubyGems: {name: "bundle", install: []string{"add"}, uninstall: []string{"remove"}},
}

// Manager runs one package manager in a workspace
type Manager struct {
	tool   tool
	root   string
	run    Runner
	logger *slog.Logger
}

// New returns the manager for a manifest ecosystem. A nil runner uses ExecRunner.
func New(eco models.Ecosystem, root string, run Runner, logger *slog.Logger) (*Manager, error) {
	t, ok := tools[eco]
	if !ok {
		if eco == models.EcosystemUnknown {
			return nil, ErrUnsupported
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, eco)
	}
	if run == nil {
		run = ExecRunner
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{tool: t, root: root, run: run, logger: logger}, nil
}

// Tool returns the package manager executable name
func (m *Manager) Tool() string {
	return m.tool.name
}

// Install adds the named packages
func (m *Manager) Install(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	return m.exec(ctx, append(append([]string{}, m.tool.install...), names...))
}

// Uninstall removes the named packages
func (m *Manager) Uninstall(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := append([]string{}, m.tool.uninstall...)
	for _, name := range names {
		args = append(args, name+m.tool.uninstallSuffix)
	}
	return m.exec(ctx, args)
}

func (m *Manager) exec(ctx context.Context, args []string) error {
	command := m.tool.name + " " + strings.Join(args, " ")
	m.logger.Info("running package manager", "command", command, "dir", m.root)

	out, err := m.run(ctx, m.root, m.tool.name, args...)
	if err != nil {
		return &CommandError{Command: command, Output: string(out), Err: err}
	}
	return nil
}

// Plan is the set of changes that resolves a result
type Plan struct {
	Install   []string `json:"install"`
	Uninstall []string `json:"uninstall"`
}

// Empty reports whether the plan has nothing to do
func (p Plan) Empty() bool {
	return len(p.Install) == 0 && len(p.Uninstall) == 0
}

// NewPlan installs missing and not-installed packages and removes unused ones
func NewPlan(result *models.DependencyResult) Plan {
	plan := Plan{Install: []string{}, Uninstall: result.UnusedPackages()}

	seen := make(map[string]bool)
	for _, group := range [][]string{result.Missing, result.NotInstalled} {
		for _, name := range group {
			if !seen[name] {
				seen[name] = true
				plan.Install = append(plan.Install, name)
			}
		}
	}
	return plan
}

// Fix executes the plan for result. With dryRun nothing is executed.
func (m *Manager) Fix(ctx context.Context, result *models.DependencyResult, dryRun bool) (Plan, error) {
	plan := NewPlan(result)
	if dryRun {
		return plan, nil
	}

	if err := m.Install(ctx, plan.Install...); err != nil {
		return plan, err
	}
	if err := m.Uninstall(ctx, plan.Uninstall...); err != nil {
		return plan, err
	}
	return plan, nil
}
