package parsers

import (
	"github.com/BurntSushi/toml"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// CargoParser parses Cargo.toml files
type CargoParser struct{}

// CanParse returns true for Cargo.toml files
func (p *CargoParser) CanParse(filename string) bool {
	return filename == "Cargo.toml"
}

type cargoManifest struct {
	Dependencies      map[string]interface{} `toml:"dependencies"`
	DevDependencies   map[string]interface{} `toml:"dev-dependencies"`
	BuildDependencies map[string]interface{} `toml:"build-dependencies"`
}

// Parse maps [dependencies] to runtime, [dev-dependencies] and
// [build-dependencies] to development
func (p *CargoParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var m cargoManifest
	if err := toml.Unmarshal(content, &m); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemCargo)
	for name, val := range m.Dependencies {
		info.Add(name, tableVersion(val), false)
	}
	for name, val := range m.DevDependencies {
		info.Add(name, tableVersion(val), true)
	}
	for name, val := range m.BuildDependencies {
		info.Add(name, tableVersion(val), true)
	}
	return info, nil
}
