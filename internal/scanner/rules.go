package scanner

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// Rule extracts raw references from a single source line
type Rule struct {
	// Pattern captures the raw reference in group 1
	Pattern *regexp.Regexp

	// Split optionally expands one capture into several raw references
	Split func(capture string) []string
}

// languages maps a file extension to the rule set used for it
var languages = map[string]models.Language{
	".js":     models.LanguageJavaScript,
	".jsx":    models.LanguageJavaScript,
	".ts":     models.LanguageJavaScript,
	".tsx":    models.LanguageJavaScript,
	".mjs":    models.LanguageJavaScript,
	".cjs":    models.LanguageJavaScript,
	".vue":    models.LanguageJavaScript,
	".svelte": models.LanguageJavaScript,
	".php":    models.LanguagePHP,
	".py":     models.LanguagePython,
	".rb":     models.LanguageRuby,
	".go":     models.LanguageGo,
	".rs":     models.LanguageRust,
	".java":   models.LanguageJava,
	".cs":     models.LanguageCSharp,
}

// ruleSets is the extraction dispatch table. Languages that are enumerated but
// not analyzed carry an explicit empty list; adding a language is adding an entry.
var ruleSets = map[models.Language][]Rule{
	models.LanguageJavaScript: {
		{Pattern: regexp.MustCompile(`\bimport\s+(?:[\w*{}\s,$]+\s+from\s+)?['"\x60]([^'"\x60]+)['"\x60]`)},
		{Pattern: regexp.MustCompile(`\bexport\s+(?:[\w*{}\s,$]+\s+)?from\s+['"\x60]([^'"\x60]+)['"\x60]`)},
		{Pattern: regexp.MustCompile(`^\s*\}\s*from\s+['"\x60]([^'"\x60]+)['"\x60]`)}, // closing line of a multi-line import
		{Pattern: regexp.MustCompile(`\brequire\s*\(\s*['"\x60]([^'"\x60]+)['"\x60]\s*\)`)},
		{Pattern: regexp.MustCompile(`\bimport\s*\(\s*['"\x60]([^'"\x60]+)['"\x60]\s*\)`)},
	},
	models.LanguagePHP: {
		{
			Pattern: regexp.MustCompile(`\b(?:use|require_once|include_once|require|include)\s+([^;]+)`),
			Split:   splitList,
		},
	},
	models.LanguagePython: {
		{Pattern: regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import\b`)},
		{Pattern: regexp.MustCompile(`^\s*import\s+(.+)$`), Split: splitPythonImports},
	},
	models.LanguageRuby: {
		{Pattern: regexp.MustCompile(`\brequire\s*\(?\s*['"\x60]([^'"\x60]+)['"\x60]`)},
	},
	models.LanguageGo:     {},
	models.LanguageRust:   {},
	models.LanguageJava:   {},
	models.LanguageCSharp: {},
}

// LanguageFor returns the language of a source file, false if the extension is not scanned
func LanguageFor(path string) (models.Language, bool) {
	lang, ok := languages[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// RulesFor returns the ordered rule set for lang
func RulesFor(lang models.Language) []Rule {
	return ruleSets[lang]
}

func splitList(capture string) []string {
	return strings.Split(capture, ",")
}

// splitPythonImports handles "import a, b.c as d  # comment"
func splitPythonImports(capture string) []string {
	capture, _, _ = strings.Cut(capture, "#")
	capture, _, _ = strings.Cut(capture, ";")

	var out []string
	for _, part := range strings.Split(capture, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		out = append(out, fields[0])
	}
	return out
}
