package parsers

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// The shallow parsers match top-level key/value lines only. Sections and
// nested tables are not resolved, so keys such as name or version end up in
// the dependency map too. Structured mode replaces them for known formats.

var (
	tomlPairPattern = regexp.MustCompile(`(?m)^([a-zA-Z0-9_-]+)\s*=\s*["']([^"']+)["']`)
	yamlPairPattern = regexp.MustCompile(`(?m)^([a-zA-Z0-9_-]+):\s*["']([^"']+)["']`)
)

// ShallowTOMLParser reads key = "value" lines from TOML manifests
type ShallowTOMLParser struct{}

// CanParse returns true for .toml files and Pipfile
func (p *ShallowTOMLParser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml") || filename == "Pipfile"
}

// Parse treats every matching pair as a runtime dependency
func (p *ShallowTOMLParser) Parse(path string, content []byte) (models.PackageInfo, error) {
	return shallowPairs(path, content, tomlPairPattern), nil
}

// ShallowYAMLParser reads key: "value" lines from YAML manifests
type ShallowYAMLParser struct{}

// CanParse returns true for .yaml and .yml files
func (p *ShallowYAMLParser) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Parse treats every matching pair as a runtime dependency
func (p *ShallowYAMLParser) Parse(path string, content []byte) (models.PackageInfo, error) {
	return shallowPairs(path, content, yamlPairPattern), nil
}

// FallbackParser handles discovered manifests with no dedicated parser
// (go.mod, pom.xml, build.gradle, *.csproj, Gemfile). Only lines that happen
// to match one of the shallow patterns contribute; usually that is none.
type FallbackParser struct{}

// CanParse accepts any file
func (p *FallbackParser) CanParse(filename string) bool {
	return true
}

// Parse applies the TOML then the YAML pair pattern
func (p *FallbackParser) Parse(path string, content []byte) (models.PackageInfo, error) {
	info := shallowPairs(path, content, tomlPairPattern)
	for name, version := range shallowPairs(path, content, yamlPairPattern).Dependencies {
		info.Add(name, version, false)
	}
	return info, nil
}

func shallowPairs(path string, content []byte, pattern *regexp.Regexp) models.PackageInfo {
	info := models.NewPackageInfo(path, EcosystemFor(path))
	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	for _, m := range pattern.FindAllStringSubmatch(normalized, -1) {
		info.Add(m[1], m[2], false)
	}
	return info
}
