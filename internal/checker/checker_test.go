package checker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/depaudit/internal/classify"
	"github.com/ethanolivertroy/depaudit/internal/inventory"
	"github.com/ethanolivertroy/depaudit/internal/models"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func analyze(t *testing.T, root string, installed inventory.Provider, opts ...Option) *models.DependencyResult {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.Root = root
	c, err := New(cfg, append([]Option{WithInventory(installed)}, opts...)...)
	require.NoError(t, err)
	result, err := c.Analyze(context.Background())
	require.NoError(t, err)
	return result
}

func packageInfo(deps, devDeps map[string]string) models.PackageInfo {
	info := models.NewPackageInfo("package.json", models.EcosystemNpm)
	for name, v := range deps {
		info.Add(name, v, false)
	}
	for name, v := range devDeps {
		info.Add(name, v, true)
	}
	return info
}

func scanOf(refs ...models.PackageReference) *models.ScanResult {
	s := models.NewScanResult()
	for _, r := range refs {
		s.Add(r)
	}
	return s
}

func ref(pkg, file string, line int) models.PackageReference {
	return models.PackageReference{Package: pkg, Location: models.Location{File: file, Line: line}}
}

type failingProvider struct{}

func (failingProvider) Installed(ctx context.Context, root string) ([]string, error) {
	return nil, errors.New("npm: command not found")
}

func TestScenarioDeclaredAndUsed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"lodash": "^4.0.0"}}`)
	writeFile(t, root, "index.js", "const _ = require('lodash');\n")

	result := analyze(t, root, inventory.Static{})
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Unused)
	assert.Equal(t, []string{"lodash"}, result.NotInstalled)
	assert.Equal(t, filepath.Join(root, "package.json"), result.Manifest)

	result = analyze(t, root, inventory.Static{"lodash"})
	assert.Empty(t, result.NotInstalled)
}

func TestScenarioUnusedDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"unused-pkg": "1.0.0"}}`)

	result := analyze(t, root, inventory.Static{"unused-pkg"})
	assert.Equal(t, []models.UnusedDependency{{Package: "unused-pkg", Locations: []models.Location{}}}, result.Unused)
}

func TestScenarioMissingDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {}}`)
	writeFile(t, root, "src/app.js", "import axios from 'axios'\n")

	result := analyze(t, root, inventory.Static{})
	assert.Equal(t, []string{"axios"}, result.Missing)
}

func TestScenarioInventoryFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"express": "4"}, "devDependencies": {"jest": "29"}}`)
	writeFile(t, root, "server.js", "const express = require('express')\n")

	result := analyze(t, root, failingProvider{})
	assert.ElementsMatch(t, []string{"express", "jest"}, result.NotInstalled)
}

func TestNoManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.js", "require('lodash')\n")
	writeFile(t, root, "node_modules/lodash/package.json", "{}")

	cfg := models.DefaultConfig()
	cfg.Root = root
	c, err := New(cfg, WithInventory(inventory.Static{}))
	require.NoError(t, err)

	_, err = c.Analyze(context.Background())
	assert.ErrorIs(t, err, ErrNoManifest)
}

func TestBrokenManifestDegrades(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{broken")
	writeFile(t, root, "index.js", "import chalk from 'chalk'\n")

	result := analyze(t, root, inventory.Static{})
	assert.Equal(t, []string{"chalk"}, result.Missing)
	assert.Empty(t, result.Unused)
	assert.Empty(t, result.NotInstalled)
}

func TestFirstManifestIsAuthoritative(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "flask==2.0.1\n")
	writeFile(t, root, "package.json", `{"dependencies": {"react": "18"}}`)
	writeFile(t, root, "app.py", "import flask\n")

	result := analyze(t, root, inventory.Static{"react", "flask"})
	assert.Equal(t, filepath.Join(root, "package.json"), result.Manifest)
	assert.Equal(t, []string{"flask"}, result.Missing)
	assert.Equal(t, []string{"react"}, result.UnusedPackages())
}

func TestStructuredManifests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", "[package]\nname = \"app\"\n\n[dependencies]\nserde = \"1\"\n\n[dev-dependencies]\ncriterion = \"0.5\"\n")

	result := analyze(t, root, inventory.Static{})
	assert.ElementsMatch(t, []string{"name", "serde"}, result.UnusedPackages())

	cfg := models.DefaultConfig()
	cfg.Root = root
	cfg.Manifests.Structured = true
	c, err := New(cfg, WithInventory(inventory.Static{}))
	require.NoError(t, err)
	result, err = c.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"serde"}, result.UnusedPackages())
	assert.Equal(t, []string{"serde", "criterion"}, result.NotInstalled)
}

func TestStdlibNamesFromOtherLanguagesAreUsed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"uuid": "9", "glob": "10", "yaml": "2", "csv": "6"}}`)
	writeFile(t, root, "index.js", "import { v4 } from 'uuid'\nconst glob = require('glob')\nimport YAML from 'yaml'\nimport { parse } from 'csv'\n")

	result := analyze(t, root, inventory.Static{"uuid", "glob", "yaml", "csv"})

	assert.Empty(t, result.Unused)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.NotInstalled)
}

func TestConfiguredDevOnlyAndExclusions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"internal-tool": "1"}}`)
	writeFile(t, root, "index.js", "import x from 'virtual-module'\n")

	cfg := models.DefaultConfig()
	cfg.Root = root
	cfg.DevOnly = []string{"internal-tool"}
	cfg.Exclude = []string{"virtual-module"}
	c, err := New(cfg, WithInventory(inventory.Static{"internal-tool"}))
	require.NoError(t, err)

	result, err := c.Analyze(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.IssueCount())
}

type stubAdvisor struct{ err error }

func (s stubAdvisor) Analyze(ctx context.Context, r *models.DependencyResult) (*models.Advice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Advice{Summary: "looks fine"}, nil
}

func TestAdvisorAttached(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{}`)

	result := analyze(t, root, inventory.Static{}, WithAdvisor(stubAdvisor{}))
	require.NotNil(t, result.Advice)
	assert.Equal(t, "looks fine", result.Advice.Summary)

	result = analyze(t, root, inventory.Static{}, WithAdvisor(stubAdvisor{err: errors.New("boom")}))
	assert.Nil(t, result.Advice)
}

func TestNewRejectsUnknownInventorySource(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Inventory.Source = "yarn"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestReconcile(t *testing.T) {
	info := packageInfo(
		map[string]string{"lodash": "^4", "left-pad": "1", "react": "18"},
		map[string]string{"jest": "29", "custom-dev": "1"},
	)
	scan := scanOf(
		ref("lodash", "a.js", 1),
		ref("axios", "a.js", 2),
		ref("Vendor/Package", "b.php", 3),
		ref("react", "c.jsx", 1),
		ref("lodash", "d.js", 7),
	)
	installed := map[string]bool{"lodash": true, "jest": true}

	result := Reconcile(info, scan, installed, classify.Default())

	assert.Equal(t, []string{"axios"}, result.Missing)
	assert.Equal(t, []models.UnusedDependency{
		{Package: "left-pad", Locations: []models.Location{}},
		{Package: "custom-dev", Locations: []models.Location{}},
	}, result.Unused)
	assert.Equal(t, []string{"left-pad", "react", "custom-dev"}, result.NotInstalled)
}

func TestReconcileEmptyInputs(t *testing.T) {
	result := Reconcile(models.PackageInfo{}, nil, nil, nil)
	assert.NotNil(t, result.Missing)
	assert.NotNil(t, result.Unused)
	assert.NotNil(t, result.NotInstalled)
	assert.Zero(t, result.IssueCount())
}

func TestReconcileProperties(t *testing.T) {
	cases := []struct {
		name string
		info models.PackageInfo
		scan *models.ScanResult
	}{
		{
			"overlapping",
			packageInfo(map[string]string{"a": "1", "b": "1"}, map[string]string{"eslint": "8"}),
			scanOf(ref("a", "x.js", 1), ref("c", "x.js", 2)),
		},
		{
			"nothing used",
			packageInfo(map[string]string{"a": "1", "typescript": "5"}, nil),
			models.NewScanResult(),
		},
		{
			"invalid names only",
			packageInfo(map[string]string{"Flask": "2"}, nil),
			scanOf(ref("Flask", "app.py", 1), ref("Monolog/Logger", "i.php", 4)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Reconcile(tc.info, tc.scan, nil, classify.Default())

			// missing and unused never overlap
			unused := make(map[string]bool)
			for _, u := range result.Unused {
				unused[u.Package] = true
			}
			for _, m := range result.Missing {
				assert.False(t, unused[m], m)
			}

			// dev-only packages are never unused
			for _, u := range result.Unused {
				assert.False(t, classify.Default().IsDevOnly(u.Package), u.Package)
			}

			// unused locations come verbatim from the scan
			for _, u := range result.Unused {
				for _, loc := range u.Locations {
					assert.Contains(t, tc.scan.Locations[u.Package], loc)
				}
			}

			// with an empty inventory everything declared is not installed
			assert.ElementsMatch(t, tc.info.Declared(), result.NotInstalled)
		})
	}
}

func TestReconcileKeepsInvalidReferenceLocations(t *testing.T) {
	info := packageInfo(map[string]string{"Flask": "2"}, nil)
	scan := scanOf(ref("Flask", "app.py", 1), ref("Flask", "app.py", 9))

	result := Reconcile(info, scan, map[string]bool{"Flask": true}, classify.Default())

	require.Len(t, result.Unused, 1)
	assert.Equal(t, scan.Locations["Flask"], result.Unused[0].Locations)
	assert.Empty(t, result.Missing)
}
