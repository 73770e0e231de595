package models

// UnusedDependency is a declared package with no valid reference in source
type UnusedDependency struct {
	Package   string     `json:"package"`
	Locations []Location `json:"locations"`
}

// DependencyResult is the final three-way classification of one analysis run
type DependencyResult struct {
	Missing      []string           `json:"missing"`
	Unused       []UnusedDependency `json:"unused"`
	NotInstalled []string           `json:"notInstalled"`
	Advice       *Advice            `json:"aiAnalysis,omitempty"`

	// Manifest is the authoritative manifest the run reconciled against
	Manifest string `json:"-"`
}

// NewDependencyResult returns a result with non-nil empty lists
func NewDependencyResult() *DependencyResult {
	return &DependencyResult{
		Missing:      []string{},
		Unused:       []UnusedDependency{},
		NotInstalled: []string{},
	}
}

// IssueCount returns the total number of reported problems
func (r *DependencyResult) IssueCount() int {
	return len(r.Missing) + len(r.Unused) + len(r.NotInstalled)
}

// UnusedPackages returns the identifiers in Unused
func (r *DependencyResult) UnusedPackages() []string {
	names := make([]string, 0, len(r.Unused))
	for _, u := range r.Unused {
		names = append(names, u.Package)
	}
	return names
}

// Advice is the optional enrichment returned by a text-generation provider
type Advice struct {
	Summary         string           `json:"summary"`
	PackageUpdates  []PackageUpdate  `json:"packageUpdates"`
	SecurityIssues  []SecurityIssue  `json:"securityIssues"`
	CodeSuggestions []CodeSuggestion `json:"codeSuggestions"`
	PerformanceTips []PerformanceTip `json:"performanceTips"`
}

// PackageUpdate suggests a newer version of a declared package
type PackageUpdate struct {
	PackageName     string   `json:"packageName"`
	CurrentVersion  string   `json:"currentVersion"`
	LatestVersion   string   `json:"latestVersion"`
	UpdateType      string   `json:"updateType"` // patch, minor, major
	Description     string   `json:"description"`
	BreakingChanges []string `json:"breakingChanges,omitempty"`
	Recommended     bool     `json:"recommended"`
}

// SecurityIssue flags a package with a known problem
type SecurityIssue struct {
	PackageName    string `json:"packageName"`
	Severity       string `json:"severity"` // low, medium, high, critical
	Description    string `json:"description"`
	CVE            string `json:"cve,omitempty"`
	Recommendation string `json:"recommendation"`
}

// CodeSuggestion points at a source location worth changing
type CodeSuggestion struct {
	File       string `json:"file"`
	Line       int    `json:"line,omitempty"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
	Category   string `json:"category"`
}

// PerformanceTip is a general recommendation
type PerformanceTip struct {
	Tip      string `json:"tip"`
	Impact   string `json:"impact"`
	Category string `json:"category"`
}
