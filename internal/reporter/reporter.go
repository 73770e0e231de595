package reporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given result
	Report(result *models.DependencyResult) ([]byte, error)
}

// Formats lists the supported output formats
var Formats = []string{"terminal", "json", "sarif"}

// Get returns a reporter for the specified format. Paths in the output are
// shown relative to root where possible.
func Get(format, root string) (Reporter, error) {
	switch format {
	case "", "terminal":
		return &TerminalReporter{Root: root}, nil
	case "json":
		return &JSONReporter{}, nil
	case "sarif":
		return &SARIFReporter{Root: root}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: terminal, json, sarif)", format)
	}
}

// relPath returns path relative to root, slash separated, or path unchanged
// when it is not under root
func relPath(root, path string) string {
	if root == "" || path == "" {
		return filepath.ToSlash(path)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.ToSlash(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
