package reporter

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// TerminalReporter outputs results in a human-readable terminal format
type TerminalReporter struct {
	Root string
}

// Report generates terminal output for the given result
func (r *TerminalReporter) Report(result *models.DependencyResult) ([]byte, error) {
	var sb strings.Builder

	if result.Manifest != "" {
		sb.WriteString(fmt.Sprintf("Manifest: %s\n\n", relPath(r.Root, result.Manifest)))
	}

	if len(result.Missing) > 0 {
		sb.WriteString("❌ Missing Dependencies:\n")
		for _, pkg := range result.Missing {
			sb.WriteString(fmt.Sprintf("  - %s\n", pkg))
		}
		sb.WriteString("\n")
	}

	if len(result.NotInstalled) > 0 {
		sb.WriteString("⚠️  Not Installed Dependencies:\n")
		for _, pkg := range result.NotInstalled {
			sb.WriteString(fmt.Sprintf("  - %s\n", pkg))
		}
		sb.WriteString("\n")
	}

	if len(result.Unused) > 0 {
		sb.WriteString("🗑️  Unused Dependencies:\n")
		for _, u := range result.Unused {
			sb.WriteString(fmt.Sprintf("  - %s\n", u.Package))
			if len(u.Locations) > 0 {
				locs := make([]string, len(u.Locations))
				for i, loc := range u.Locations {
					locs[i] = fmt.Sprintf("%s:%d", relPath(r.Root, loc.File), loc.Line)
				}
				sb.WriteString(fmt.Sprintf("    Found in: %s\n", strings.Join(locs, ", ")))
			}
		}
		sb.WriteString("\n")
	}

	if total := result.IssueCount(); total == 0 {
		sb.WriteString("✅ All dependencies are properly configured!\n")
	} else {
		sb.WriteString(fmt.Sprintf("Found %d issues. Use 'depaudit fix' to automatically resolve them.\n", total))
	}

	if a := result.Advice; a != nil {
		writeAdvice(&sb, a)
	}

	return []byte(sb.String()), nil
}

func writeAdvice(sb *strings.Builder, a *models.Advice) {
	sb.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	sb.WriteString("🤖 AI Analysis\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	if a.Summary != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", a.Summary))
	}

	if len(a.SecurityIssues) > 0 {
		sb.WriteString("\n🔒 Security Issues:\n")
		for _, s := range a.SecurityIssues {
			sb.WriteString(fmt.Sprintf("  - [%s] %s: %s\n", strings.ToUpper(s.Severity), s.PackageName, s.Description))
			if s.CVE != "" {
				sb.WriteString(fmt.Sprintf("    CVE: %s\n", s.CVE))
			}
			if s.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("    Recommendation: %s\n", s.Recommendation))
			}
		}
	}

	if len(a.PackageUpdates) > 0 {
		sb.WriteString("\n📦 Package Updates:\n")
		for _, u := range a.PackageUpdates {
			sb.WriteString(fmt.Sprintf("  - %s %s -> %s (%s)\n", u.PackageName, u.CurrentVersion, u.LatestVersion, u.UpdateType))
			for _, change := range u.BreakingChanges {
				sb.WriteString(fmt.Sprintf("    Breaking: %s\n", change))
			}
		}
	}

	if len(a.CodeSuggestions) > 0 {
		sb.WriteString("\n💡 Code Suggestions:\n")
		for _, s := range a.CodeSuggestions {
			where := s.File
			if s.Line > 0 {
				where = fmt.Sprintf("%s:%d", s.File, s.Line)
			}
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", where, s.Suggestion))
		}
	}

	if len(a.PerformanceTips) > 0 {
		sb.WriteString("\n⚡ Performance Tips:\n")
		for _, p := range a.PerformanceTips {
			sb.WriteString(fmt.Sprintf("  - %s (%s impact)\n", p.Tip, p.Impact))
		}
	}
}
