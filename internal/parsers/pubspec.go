package parsers

import (
	"gopkg.in/yaml.v3"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// PubspecParser parses pubspec.yaml files
type PubspecParser struct{}

// CanParse returns true for pubspec.yaml files
func (p *PubspecParser) CanParse(filename string) bool {
	return filename == "pubspec.yaml"
}

type pubspec struct {
	Dependencies    map[string]interface{} `yaml:"dependencies"`
	DevDependencies map[string]interface{} `yaml:"dev_dependencies"`
}

// Parse maps dependencies and dev_dependencies. SDK entries such as
// flutter: {sdk: flutter} are not packages and are skipped.
func (p *PubspecParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var spec pubspec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemPub)
	add := func(deps map[string]interface{}, dev bool) {
		for name, val := range deps {
			version, ok := pubVersion(val)
			if !ok {
				continue
			}
			info.Add(name, version, dev)
		}
	}
	add(spec.Dependencies, false)
	add(spec.DevDependencies, true)
	return info, nil
}

func pubVersion(val interface{}) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case map[string]interface{}:
		if _, ok := v["sdk"]; ok {
			return "", false
		}
		if s, ok := v["version"].(string); ok {
			return s, true
		}
		return "", true
	}
	return "", true
}
