package parsers

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// NodePackageJSONParser parses package.json files (direct dependencies only)
type NodePackageJSONParser struct{}

// CanParse returns true for package.json files
func (p *NodePackageJSONParser) CanParse(filename string) bool {
	return filename == "package.json"
}

// packageJSON represents the structure of package.json
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependencies from package.json content. Version ranges are
// kept as written.
func (p *NodePackageJSONParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemNpm)
	for name, version := range pkg.Dependencies {
		info.Add(name, version, false)
	}
	for name, version := range pkg.DevDependencies {
		info.Add(name, version, true)
	}
	return info, nil
}

// ComposerJSONParser parses composer.json files
type ComposerJSONParser struct{}

// CanParse returns true for composer.json files
func (p *ComposerJSONParser) CanParse(filename string) bool {
	return filename == "composer.json"
}

type composerJSON struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// Parse maps require to dependencies and require-dev to devDependencies
func (p *ComposerJSONParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var c composerJSON
	if err := json.Unmarshal(content, &c); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemComposer)
	for name, version := range c.Require {
		info.Add(name, version, false)
	}
	for name, version := range c.RequireDev {
		info.Add(name, version, true)
	}
	return info, nil
}

// packageLock represents the structure of package-lock.json (v1, v2 and v3)
type packageLock struct {
	LockfileVersion int `json:"lockfileVersion"`
	// V2/V3 format
	Packages map[string]struct {
		Version string `json:"version"`
	} `json:"packages"`
	// V1 format
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

// ParsePackageLock returns the top-level packages recorded in a package-lock.json,
// sorted by name. Nested node_modules entries are not top-level and are skipped.
func ParsePackageLock(content []byte) ([]string, error) {
	var lock packageLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string

	// V2/V3 format (packages map)
	for path := range lock.Packages {
		name, ok := strings.CutPrefix(path, "node_modules/")
		if !ok || name == "" || strings.Contains(name, "/node_modules/") {
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	// V1 format fallback
	if len(lock.Packages) == 0 {
		for name := range lock.Dependencies {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}
