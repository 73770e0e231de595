// Package classify holds the static lookup tables that drop false-positive
// references and suppress unused reports for tooling packages.
package classify

import (
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// Classifier answers exclusion and dev-only membership questions.
// It is read-only after construction and safe for concurrent use.
type Classifier struct {
	// exclusions per source language; extras apply to every language
	exclusions map[models.Language]map[string]struct{}
	extras     map[string]struct{}
	devOnly    map[string]struct{}
}

var builtin = &Classifier{
	exclusions: map[models.Language]map[string]struct{}{
		models.LanguageJavaScript: toSet(nodeBuiltins, jsGlobals, namespaceMarkers),
		models.LanguagePHP:        toSet(phpNamespaces),
		models.LanguagePython:     toSet(pythonStdlib),
		models.LanguageRuby:       toSet(rubyStdlib),
		models.LanguageGo:         toSet(goBuiltins),
		models.LanguageRust:       toSet(rustBuiltins),
		models.LanguageJava:       toSet(javaBuiltins),
		models.LanguageCSharp:     toSet(dotnetBuiltins),
	},
	extras:  map[string]struct{}{},
	devOnly: toSet(jsDevOnly, pythonDevOnly, phpDevOnly, rubyDevOnly, javaDevOnly, dotnetDevOnly, goDevOnly, rustDevOnly, otherDevOnly),
}

// Default returns the classifier built from the embedded tables
func Default() *Classifier {
	return builtin
}

// New returns a classifier with the embedded tables plus the given extras.
// Extra exclusions apply to references from every language.
func New(extraExclusions, extraDevOnly []string) *Classifier {
	if len(extraExclusions) == 0 && len(extraDevOnly) == 0 {
		return builtin
	}
	return &Classifier{
		exclusions: builtin.exclusions,
		extras:     clone(builtin.extras, extraExclusions),
		devOnly:    clone(builtin.devOnly, extraDevOnly),
	}
}

// IsExcluded reports whether id, referenced from a lang source file, is a
// builtin, global or namespace marker of that language, or a configured exclusion
func (c *Classifier) IsExcluded(id string, lang models.Language) bool {
	id = strings.ToLower(id)
	if _, ok := c.extras[id]; ok {
		return true
	}
	_, ok := c.exclusions[lang][id]
	return ok
}

// IsDevOnly reports whether id is a known tooling package
func (c *Classifier) IsDevOnly(id string) bool {
	_, ok := c.devOnly[strings.ToLower(id)]
	return ok
}

func toSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			set[strings.ToLower(name)] = struct{}{}
		}
	}
	return set
}

func clone(base map[string]struct{}, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for k := range base {
		set[k] = struct{}{}
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			set[strings.ToLower(name)] = struct{}{}
		}
	}
	return set
}
