package models

import "fmt"

// Language tags the lexical rule set used for a source file
type Language string

const (
	LanguageJavaScript Language = "javascript" // JS/TS, Vue and Svelte single-file components
	LanguagePHP        Language = "php"
	LanguagePython     Language = "python"
	LanguageRuby       Language = "ruby"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
	LanguageJava       Language = "java"
	LanguageCSharp     Language = "csharp"
)

// Location is a 1-based file:line position of a reference
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// String returns file:line
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// PackageReference is one occurrence of a package identifier in source
type PackageReference struct {
	Package string
	Location
}

// ScanResult holds every package referenced in a workspace
type ScanResult struct {
	// Packages lists referenced identifiers in discovery order
	Packages []string

	// Locations maps identifier -> references in file then line order
	Locations map[string][]Location
}

// NewScanResult returns an empty ScanResult
func NewScanResult() *ScanResult {
	return &ScanResult{Locations: make(map[string][]Location)}
}

// Add appends a reference, registering the package on first sight
func (r *ScanResult) Add(ref PackageReference) {
	if r.Locations == nil {
		r.Locations = make(map[string][]Location)
	}
	if _, ok := r.Locations[ref.Package]; !ok {
		r.Packages = append(r.Packages, ref.Package)
	}
	r.Locations[ref.Package] = append(r.Locations[ref.Package], ref.Location)
}
