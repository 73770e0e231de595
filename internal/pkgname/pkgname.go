// Package pkgname canonicalizes raw import paths and manifest keys into the
// package identifiers used to join scan results with manifest declarations.
package pkgname

import (
	"regexp"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// validPattern is the scoped-or-simple npm name grammar
var validPattern = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

// phpCanonical matches an identifier already in vendor/package form
var phpCanonical = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Normalize returns the canonical package identifier for raw, or false when raw
// is not a package reference (empty, relative or absolute path, too few segments).
func Normalize(raw string, lang models.Language) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || IsRelative(raw) {
		return "", false
	}

	switch lang {
	case models.LanguageJavaScript:
		return npm(raw)
	case models.LanguagePHP:
		return php(raw)
	case models.LanguagePython:
		return python(raw)
	case models.LanguageRuby:
		return raw, true
	default:
		return "", false
	}
}

// IsRelative reports whether ref points at a file rather than a package
func IsRelative(ref string) bool {
	return strings.HasPrefix(ref, ".") || strings.HasPrefix(ref, "/")
}

// IsValid reports whether id looks like a syntactically valid package name
func IsValid(id string) bool {
	return validPattern.MatchString(id)
}

// npm: first path segment, or scope + name for @scoped references
func npm(ref string) (string, bool) {
	parts := strings.Split(ref, "/")
	if strings.HasPrefix(ref, "@") {
		if len(parts) < 2 || parts[1] == "" {
			return "", false
		}
		return parts[0] + "/" + parts[1], true
	}
	if parts[0] == "" {
		return "", false
	}
	return parts[0], true
}

// php: vendor/package from a namespace path
func php(ref string) (string, bool) {
	ref = strings.TrimPrefix(ref, "function ")
	ref = strings.TrimPrefix(ref, "const ")
	ref = strings.TrimLeft(strings.TrimSpace(ref), `\`)

	if !strings.Contains(ref, `\`) {
		if phpCanonical.MatchString(ref) {
			return ref, true
		}
		return "", false
	}

	parts := strings.Split(ref, `\`)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "/" + parts[1], true
}

// python: top-level module
func python(ref string) (string, bool) {
	top, _, _ := strings.Cut(ref, ".")
	if top == "" {
		return "", false
	}
	return top, true
}
