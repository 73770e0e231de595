package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ethanolivertroy/depaudit/internal/classify"
	"github.com/ethanolivertroy/depaudit/internal/models"
	"github.com/ethanolivertroy/depaudit/internal/pkgname"
	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

// Options configures a Scanner
type Options struct {
	Ignore     []string             // doublestar globs relative to the root
	Classifier *classify.Classifier // defaults to classify.Default()
	Workers    int                  // concurrent file reads, defaults to 8
	Logger     *slog.Logger
}

// Scanner extracts package references from the source files of a workspace
type Scanner struct {
	ignore     *workspace.Matcher
	classifier *classify.Classifier
	workers    int
	logger     *slog.Logger
}

// New creates a new Scanner with the given options
func New(opts Options) (*Scanner, error) {
	m, err := workspace.NewMatcher(opts.Ignore)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		ignore:     m,
		classifier: opts.Classifier,
		workers:    opts.Workers,
		logger:     opts.Logger,
	}
	if s.classifier == nil {
		s.classifier = classify.Default()
	}
	if s.workers <= 0 {
		s.workers = 8
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// Scan walks root and returns every referenced package with its locations.
// Files are read concurrently; results are merged in path order so the output
// is deterministic. A file that cannot be read is logged and contributes nothing.
func (s *Scanner) Scan(ctx context.Context, root string) (*models.ScanResult, error) {
	files, err := workspace.Files(ctx, root, s.ignore, s.logger, func(rel string) bool {
		_, ok := LanguageFor(rel)
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	perFile := make([][]models.PackageReference, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, f := range files {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			refs, err := s.ScanFile(f.Path)
			if err != nil {
				s.logger.Warn("failed to read source file", "file", f.Path, "error", err)
				return nil
			}
			perFile[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := models.NewScanResult()
	for _, refs := range perFile {
		for _, ref := range refs {
			result.Add(ref)
		}
	}

	s.logger.Debug("reference scan complete", "files", len(files), "packages", len(result.Packages))
	return result, nil
}

// ScanFile extracts references from a single file, in line order
func (s *Scanner) ScanFile(path string) ([]models.PackageReference, error) {
	lang, ok := LanguageFor(path)
	if !ok {
		return nil, nil
	}
	rules := RulesFor(lang)
	if len(rules) == 0 {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var refs []models.PackageReference
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, pkg := range Extract(line, lang, s.classifier) {
			refs = append(refs, models.PackageReference{
				Package:  pkg,
				Location: models.Location{File: path, Line: i + 1},
			})
		}
	}
	return refs, nil
}

// Extract returns the canonical, non-excluded package identifiers referenced
// on a single line. Each identifier appears at most once per line.
func Extract(line string, lang models.Language, c *classify.Classifier) []string {
	var pkgs []string
	seen := make(map[string]bool)

	for _, rule := range RulesFor(lang) {
		for _, match := range rule.Pattern.FindAllStringSubmatch(line, -1) {
			if len(match) < 2 {
				continue
			}
			raws := []string{match[1]}
			if rule.Split != nil {
				raws = rule.Split(match[1])
			}
			for _, raw := range raws {
				pkg, ok := pkgname.Normalize(raw, lang)
				if !ok || c.IsExcluded(pkg, lang) || seen[pkg] {
					continue
				}
				seen[pkg] = true
				pkgs = append(pkgs, pkg)
			}
		}
	}
	return pkgs
}
