// Package workspace walks a project tree while honoring ignore globs.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a workspace-relative path is ignored
type Matcher struct {
	patterns []string
}

// NewMatcher validates and compiles the given doublestar globs
func NewMatcher(globs []string) (*Matcher, error) {
	m := &Matcher{}
	for _, g := range globs {
		g = filepath.ToSlash(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid ignore pattern %q", g)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

// Patterns returns the active globs
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Match reports whether rel (slash separated, relative to the root) is ignored.
// Directories are tested as if they contained a child so that "**/dist/**"
// prunes the dist directory itself.
func (m *Matcher) Match(rel string, isDir bool) bool {
	if m == nil {
		return false
	}
	candidate := rel
	if isDir {
		candidate = rel + "/_"
	}
	for _, p := range m.patterns {
		if ok, err := doublestar.Match(p, candidate); err == nil && ok {
			return true
		}
	}
	return false
}

// File is a regular file found under the root
type File struct {
	Path string // root joined with Rel
	Rel  string // slash separated, relative to root
}

// Files returns every non-ignored regular file under root accepted by keep,
// ordered by relative path. Unreadable directories are logged and skipped.
func Files(ctx context.Context, root string, m *Matcher, logger *slog.Logger, keep func(rel string) bool) ([]File, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if m.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || m.Match(rel, false) {
			return nil
		}
		if keep != nil && !keep(rel) {
			return nil
		}

		files = append(files, File{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}
