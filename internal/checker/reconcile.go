package checker

import (
	"github.com/ethanolivertroy/depaudit/internal/classify"
	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/pkgname"
)

// Reconcile classifies declared and used packages into missing, unused and
// not installed. It has no error path: callers map every upstream failure to
// an empty input first.
//
// Builtin exclusions depend on the referencing language and are applied by
// the scanner; scan results reaching Reconcile are only checked for validity.
//
// Missing follows scan discovery order. Unused and notInstalled follow the
// manifest's runtime-then-dev, name-sorted order.
func Reconcile(info models.PackageInfo, scan *models.ScanResult, installed map[string]bool, c *classify.Classifier) *models.DependencyResult {
	if scan == nil {
		scan = models.NewScanResult()
	}
	if c == nil {
		c = classify.Default()
	}

	declared := info.Declared()
	isDeclared := make(map[string]bool, len(declared))
	for _, name := range declared {
		isDeclared[name] = true
	}

	used := make(map[string]bool, len(scan.Packages))
	var validUsed []string
	for _, pkg := range scan.Packages {
		if used[pkg] || !pkgname.IsValid(pkg) {
			continue
		}
		used[pkg] = true
		validUsed = append(validUsed, pkg)
	}

	result := models.NewDependencyResult()

	for _, pkg := range validUsed {
		if !isDeclared[pkg] {
			result.Missing = append(result.Missing, pkg)
		}
	}

	for _, name := range declared {
		if !used[name] && !c.IsDevOnly(name) {
			locations := append([]models.Location{}, scan.Locations[name]...)
			result.Unused = append(result.Unused, models.UnusedDependency{
				Package:   name,
				Locations: locations,
			})
		}
		if !installed[name] {
			result.NotInstalled = append(result.NotInstalled, name)
		}
	}

	return result
}
