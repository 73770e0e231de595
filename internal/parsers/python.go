package parsers

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// PythonRequirementsParser parses requirements.txt files
type PythonRequirementsParser struct{}

// CanParse returns true for requirements.txt files
func (p *PythonRequirementsParser) CanParse(filename string) bool {
	return filename == "requirements.txt"
}

// requirementPattern matches a name optionally pinned with ==, >=, <= or ~=
var requirementPattern = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:==|>=|<=|~=)?([0-9.]+)?`)

// Parse extracts dependencies from requirements.txt content. The format has
// no dev section, so every entry is a runtime dependency. Names are kept as
// written.
func (p *PythonRequirementsParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	info := models.NewPackageInfo(filepath, models.EcosystemPyPI)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)

		// Skip empty lines, comments, and options
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		// Remove inline comments
		if idx := strings.Index(line, "#"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		line = stripExtras(line)

		matches := requirementPattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		info.Add(matches[1], matches[2], false)
	}

	return info, nil
}

// stripExtras removes an extras list like [security]
func stripExtras(req string) string {
	if idx := strings.Index(req, "["); idx > 0 {
		if end := strings.Index(req, "]"); end > idx {
			return strings.TrimSpace(req[:idx] + req[end+1:])
		}
	}
	return req
}

// PyProjectParser parses pyproject.toml files
type PyProjectParser struct{}

// CanParse returns true for pyproject.toml files
func (p *PyProjectParser) CanParse(filename string) bool {
	return filename == "pyproject.toml"
}

// pyproject represents the structure of pyproject.toml
type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]interface{} `toml:"dependencies"`
			DevDependencies map[string]interface{} `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]interface{} `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Parse extracts PEP 621 and Poetry dependencies. Optional dependency
// groups and Poetry dev groups are treated as development dependencies.
func (p *PyProjectParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var proj pyproject
	if err := toml.Unmarshal(content, &proj); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemPyPI)

	for _, dep := range proj.Project.Dependencies {
		if name, version := parsePEP508(dep); name != "" {
			info.Add(name, version, false)
		}
	}
	for _, group := range proj.Project.OptionalDependencies {
		for _, dep := range group {
			if name, version := parsePEP508(dep); name != "" {
				info.Add(name, version, true)
			}
		}
	}

	for name, val := range proj.Tool.Poetry.Dependencies {
		if strings.EqualFold(name, "python") {
			continue
		}
		info.Add(strings.ToLower(name), tableVersion(val), false)
	}
	for name, val := range proj.Tool.Poetry.DevDependencies {
		info.Add(strings.ToLower(name), tableVersion(val), true)
	}
	for _, group := range proj.Tool.Poetry.Group {
		for name, val := range group.Dependencies {
			info.Add(strings.ToLower(name), tableVersion(val), true)
		}
	}

	return info, nil
}

// PipfileParser parses Pipfile files
type PipfileParser struct{}

// CanParse returns true for Pipfile files
func (p *PipfileParser) CanParse(filename string) bool {
	return filename == "Pipfile"
}

type pipfile struct {
	Packages    map[string]interface{} `toml:"packages"`
	DevPackages map[string]interface{} `toml:"dev-packages"`
}

// Parse maps [packages] to dependencies and [dev-packages] to devDependencies
func (p *PipfileParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var pf pipfile
	if err := toml.Unmarshal(content, &pf); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemPyPI)
	for name, val := range pf.Packages {
		info.Add(strings.ToLower(name), tableVersion(val), false)
	}
	for name, val := range pf.DevPackages {
		info.Add(strings.ToLower(name), tableVersion(val), true)
	}
	return info, nil
}

// pep508Pattern matches a requirement name followed by an optional specifier
var pep508Pattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\s*(.*)$`)

// parsePEP508 parses a PEP 508 dependency specification
// e.g. "requests>=2.28.0", "flask[async]>=2.0", "django==4.2; python_version>'3.8'"
func parsePEP508(req string) (name string, version string) {
	req = stripExtras(req)

	// Remove environment markers
	if idx := strings.Index(req, ";"); idx > 0 {
		req = req[:idx]
	}

	matches := pep508Pattern.FindStringSubmatch(strings.TrimSpace(req))
	if matches == nil {
		return "", ""
	}
	return strings.ToLower(matches[1]), strings.TrimSpace(matches[2])
}

// tableVersion returns the version of a dependency declared either as a plain
// string or as an inline table. Path and git dependencies have no version.
func tableVersion(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]interface{}:
		if s, ok := v["version"].(string); ok {
			return s
		}
	}
	return ""
}
