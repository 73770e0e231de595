package parsers

import (
	"github.com/ethanolivertroy/depaudit/internal/models"
	"golang.org/x/mod/modfile"
)

// GoModParser parses go.mod files
type GoModParser struct {
	IncludeIndirect bool // Whether to include indirect dependencies
}

// CanParse returns true for go.mod files
func (p *GoModParser) CanParse(filename string) bool {
	return filename == "go.mod"
}

// Parse extracts direct requirements from go.mod content
func (p *GoModParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	mod, err := modfile.Parse(filepath, content, nil)
	if err != nil {
		return models.PackageInfo{}, err
	}

	info := models.NewPackageInfo(filepath, models.EcosystemGo)
	for _, req := range mod.Require {
		// Skip indirect deps unless explicitly requested
		if req.Indirect && !p.IncludeIndirect {
			continue
		}
		info.Add(req.Mod.Path, req.Mod.Version, false)
	}
	return info, nil
}
