package parsers

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

// manifestKind is one entry of the discovery priority list
type manifestKind struct {
	Pattern   string
	Ecosystem models.Ecosystem
}

// manifestKinds is ordered by priority: the first kind with a match wins
var manifestKinds = []manifestKind{
	{"**/package.json", models.EcosystemNpm},
	{"**/composer.json", models.EcosystemComposer},
	{"**/requirements.txt", models.EcosystemPyPI},
	{"**/Pipfile", models.EcosystemPyPI},
	{"**/pyproject.toml", models.EcosystemPyPI},
	{"**/Gemfile", models.EcosystemRubyGems},
	{"**/Cargo.toml", models.EcosystemCargo},
	{"**/go.mod", models.EcosystemGo},
	{"**/pom.xml", models.EcosystemMaven},
	{"**/build.gradle", models.EcosystemMaven},
	{"**/*.csproj", models.EcosystemNuGet},
	{"**/pubspec.yaml", models.EcosystemPub},
}

// kindOf returns the priority index of a relative path, or -1
func kindOf(rel string) int {
	for i, k := range manifestKinds {
		if ok, _ := doublestar.Match(k.Pattern, rel); ok {
			return i
		}
	}
	return -1
}

// EcosystemFor returns the ecosystem of a manifest path
func EcosystemFor(path string) models.Ecosystem {
	if i := kindOf(filepath.Base(path)); i >= 0 {
		return manifestKinds[i].Ecosystem
	}
	return models.EcosystemUnknown
}

// FindManifests returns every manifest under root that is not ignored, ordered
// by format priority, then by depth (the workspace's own manifest before
// nested ones), then by path. The first entry is authoritative.
func FindManifests(ctx context.Context, root string, ignore *workspace.Matcher) ([]string, error) {
	files, err := workspace.Files(ctx, root, ignore, nil, func(rel string) bool {
		return kindOf(rel) >= 0
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		ki, kj := kindOf(files[i].Rel), kindOf(files[j].Rel)
		if ki != kj {
			return ki < kj
		}
		di, dj := strings.Count(files[i].Rel, "/"), strings.Count(files[j].Rel, "/")
		if di != dj {
			return di < dj
		}
		return files[i].Rel < files[j].Rel
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}
