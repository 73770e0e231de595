package parsers

import (
	"encoding/xml"
	"path/filepath"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// MavenParser parses pom.xml files
type MavenParser struct{}

// CanParse returns true for pom.xml files
func (p *MavenParser) CanParse(filename string) bool {
	return filename == "pom.xml"
}

type pomProject struct {
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

// Parse reads the project's direct <dependency> elements, keyed by
// artifactId. Test and provided scopes are development dependencies.
func (p *MavenParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var proj pomProject
	if err := xml.Unmarshal(content, &proj); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemMaven)
	for _, dep := range proj.Dependencies {
		name := strings.TrimSpace(dep.ArtifactID)
		if name == "" {
			continue
		}
		scope := strings.TrimSpace(dep.Scope)
		info.Add(name, strings.TrimSpace(dep.Version), scope == "test" || scope == "provided")
	}
	return info, nil
}

// CsprojParser parses .NET project files
type CsprojParser struct{}

// CanParse returns true for *.csproj files
func (p *CsprojParser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csproj")
}

type csproj struct {
	ItemGroups []struct {
		References []packageReference `xml:"PackageReference"`
	} `xml:"ItemGroup"`
}

type packageReference struct {
	Include       string `xml:"Include,attr"`
	Version       string `xml:"Version,attr"`
	PrivateAssets string `xml:"PrivateAssets,attr"`
}

// Parse reads PackageReference items. PrivateAssets="all" marks build-time
// only references such as analyzers and test adapters.
func (p *CsprojParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	var proj csproj
	if err := xml.Unmarshal(content, &proj); err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemNuGet)
	for _, group := range proj.ItemGroups {
		for _, ref := range group.References {
			if ref.Include == "" {
				continue
			}
			info.Add(ref.Include, ref.Version, strings.EqualFold(ref.PrivateAssets, "all"))
		}
	}
	return info, nil
}
