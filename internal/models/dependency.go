package models

import "sort"

// Ecosystem represents a package ecosystem
type Ecosystem string

const (
	EcosystemNpm      Ecosystem = "npm"
	EcosystemComposer Ecosystem = "composer"
	EcosystemPyPI     Ecosystem = "PyPI"
	EcosystemRubyGems Ecosystem = "RubyGems"
	EcosystemCargo    Ecosystem = "crates.io"
	EcosystemGo       Ecosystem = "Go"
	EcosystemMaven    Ecosystem = "Maven"
	EcosystemNuGet    Ecosystem = "NuGet"
	EcosystemPub      Ecosystem = "Pub"
	EcosystemUnknown  Ecosystem = ""
)

// ManifestEntry is a single declared dependency
type ManifestEntry struct {
	Name    string
	Version string // Declared constraint as written ("*" when absent)
	Dev     bool   // Development-only dependency
}

// PackageInfo is the uniform shape every manifest parser produces
type PackageInfo struct {
	Path            string            `json:"path,omitempty"`
	Ecosystem       Ecosystem         `json:"ecosystem,omitempty"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// NewPackageInfo returns an empty PackageInfo for the given manifest
func NewPackageInfo(path string, eco Ecosystem) PackageInfo {
	return PackageInfo{
		Path:            path,
		Ecosystem:       eco,
		Dependencies:    make(map[string]string),
		DevDependencies: make(map[string]string),
	}
}

// Add records a declared dependency. A later declaration of the same name wins.
func (p *PackageInfo) Add(name, version string, dev bool) {
	if p.Dependencies == nil {
		p.Dependencies = make(map[string]string)
	}
	if p.DevDependencies == nil {
		p.DevDependencies = make(map[string]string)
	}
	if version == "" {
		version = "*"
	}
	if dev {
		p.DevDependencies[name] = version
		return
	}
	p.Dependencies[name] = version
}

// Entries returns runtime entries followed by dev entries, each sorted by name
func (p PackageInfo) Entries() []ManifestEntry {
	entries := make([]ManifestEntry, 0, len(p.Dependencies)+len(p.DevDependencies))
	for _, name := range sortedKeys(p.Dependencies) {
		entries = append(entries, ManifestEntry{Name: name, Version: p.Dependencies[name]})
	}
	for _, name := range sortedKeys(p.DevDependencies) {
		entries = append(entries, ManifestEntry{Name: name, Version: p.DevDependencies[name], Dev: true})
	}
	return entries
}

// Declared returns the union of runtime and dev dependency names in Entries order
func (p PackageInfo) Declared() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range p.Entries() {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		names = append(names, e.Name)
	}
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
