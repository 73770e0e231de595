package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// SARIFReporter outputs results in SARIF format for GitHub Code Scanning
type SARIFReporter struct {
	Root string
}

// SARIF structures
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	FullDescription  sarifText       `json:"fullDescription"`
	Help             sarifText       `json:"help"`
	DefaultConfig    sarifRuleConfig `json:"defaultConfiguration"`
	Properties       sarifProperties `json:"properties"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifProperties struct {
	Tags []string `json:"tags"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifText         `json:"message"`
	Locations           []sarifLocation   `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           *sarifRegion  `json:"region,omitempty"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine,omitempty"`
}

// Rule identifiers, in rule index order
const (
	RuleMissing      = "DEP001"
	RuleUnused       = "DEP002"
	RuleNotInstalled = "DEP003"
)

var sarifRules = []sarifRule{
	{
		ID:               RuleMissing,
		Name:             "MissingDependency",
		ShortDescription: sarifText{Text: "Package is used but not declared"},
		FullDescription:  sarifText{Text: "Source code references a package that the manifest does not declare."},
		Help:             sarifText{Text: "Add the package to the manifest, or run `depaudit fix`."},
		DefaultConfig:    sarifRuleConfig{Level: "error"},
		Properties:       sarifProperties{Tags: []string{"dependencies", "missing"}},
	},
	{
		ID:               RuleUnused,
		Name:             "UnusedDependency",
		ShortDescription: sarifText{Text: "Package is declared but not used"},
		FullDescription:  sarifText{Text: "The manifest declares a package that no source file references."},
		Help:             sarifText{Text: "Remove the package from the manifest if it is not needed at runtime."},
		DefaultConfig:    sarifRuleConfig{Level: "warning"},
		Properties:       sarifProperties{Tags: []string{"dependencies", "unused"}},
	},
	{
		ID:               RuleNotInstalled,
		Name:             "NotInstalledDependency",
		ShortDescription: sarifText{Text: "Package is declared but not installed"},
		FullDescription:  sarifText{Text: "The manifest declares a package that the package manager does not report as installed."},
		Help:             sarifText{Text: "Install the workspace's dependencies with its package manager."},
		DefaultConfig:    sarifRuleConfig{Level: "warning"},
		Properties:       sarifProperties{Tags: []string{"dependencies", "install"}},
	},
}

// Report generates SARIF output for the given result
func (r *SARIFReporter) Report(result *models.DependencyResult) ([]byte, error) {
	report := sarifReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           "depaudit",
					Version:        "1.0.0",
					InformationURI: "https://github.com/ethanolivertroy/depaudit",
					Rules:          sarifRules,
				},
			},
			Results: r.buildResults(result),
		}},
	}

	return json.MarshalIndent(report, "", "  ")
}

func (r *SARIFReporter) manifestLocation(result *models.DependencyResult) []sarifLocation {
	if result.Manifest == "" {
		return []sarifLocation{}
	}
	return []sarifLocation{{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifact{URI: relPath(r.Root, result.Manifest)},
		},
	}}
}

func (r *SARIFReporter) buildResults(result *models.DependencyResult) []sarifResult {
	results := []sarifResult{}

	add := func(ruleIndex int, pkg, msg string, locations []sarifLocation) {
		rule := sarifRules[ruleIndex]
		results = append(results, sarifResult{
			RuleID:    rule.ID,
			RuleIndex: ruleIndex,
			Level:     rule.DefaultConfig.Level,
			Message:   sarifText{Text: msg},
			Locations: locations,
			PartialFingerprints: map[string]string{
				"primaryLocationLineHash": fmt.Sprintf("%s:%s", rule.ID, pkg),
			},
		})
	}

	for _, pkg := range result.Missing {
		add(0, pkg, fmt.Sprintf("Package %s is used but not declared in the manifest", pkg), r.manifestLocation(result))
	}

	for _, u := range result.Unused {
		locations := r.manifestLocation(result)
		if len(u.Locations) > 0 {
			locations = make([]sarifLocation, len(u.Locations))
			for i, loc := range u.Locations {
				locations[i] = sarifLocation{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifact{URI: relPath(r.Root, loc.File)},
						Region:           &sarifRegion{StartLine: loc.Line},
					},
				}
			}
		}
		add(1, u.Package, fmt.Sprintf("Package %s is declared but not used", u.Package), locations)
	}

	for _, pkg := range result.NotInstalled {
		add(2, pkg, fmt.Sprintf("Package %s is declared but not installed", pkg), r.manifestLocation(result))
	}

	return results
}
