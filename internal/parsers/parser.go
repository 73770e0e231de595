package parsers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// Parser is the interface for dependency manifest parsers
type Parser interface {
	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts declared dependencies from the file content
	Parse(filepath string, content []byte) (models.PackageInfo, error)
}

// GetAllParsers returns the parsers used for manifest parsing, most specific first.
// In structured mode the format-aware parsers shadow the shallow line-oriented ones.
func GetAllParsers(structured bool) []Parser {
	var parsers []Parser
	if structured {
		parsers = append(parsers,
			&PyProjectParser{},
			&PipfileParser{},
			&CargoParser{},
			&GoModParser{},
			&PubspecParser{},
			&GemfileParser{},
			&MavenParser{},
			&CsprojParser{},
		)
	}
	return append(parsers,
		&NodePackageJSONParser{},
		&ComposerJSONParser{},
		&PythonRequirementsParser{},
		&ShallowTOMLParser{},
		&ShallowYAMLParser{},
		&FallbackParser{},
	)
}

// ForFile returns the first parser that accepts the file's base name
func ForFile(path string, structured bool) Parser {
	name := filepath.Base(path)
	for _, p := range GetAllParsers(structured) {
		if p.CanParse(name) {
			return p
		}
	}
	return &FallbackParser{}
}

// ParseFile reads and parses a manifest, returning any read or parse error
func ParseFile(path string, structured bool) (models.PackageInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.PackageInfo{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	info, err := ForFile(path, structured).Parse(path, content)
	if err != nil {
		return models.PackageInfo{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return info, nil
}

// ParseManifest is ParseFile for the analysis pipeline: a manifest that cannot
// be read or parsed yields an empty PackageInfo and a warning.
func ParseManifest(path string, structured bool, logger *slog.Logger) models.PackageInfo {
	info, err := ParseFile(path, structured)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to parse manifest", "manifest", path, "error", err)
		}
		return models.NewPackageInfo(path, EcosystemFor(path))
	}
	return info
}
