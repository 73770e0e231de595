package parsers

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// GemfileParser parses Bundler Gemfiles
type GemfileParser struct{}

// CanParse returns true for Gemfile files
func (p *GemfileParser) CanParse(filename string) bool {
	return filename == "Gemfile"
}

var (
	gemPattern   = regexp.MustCompile(`^gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)
	groupPattern = regexp.MustCompile(`^group\s+(.+?)\s+do\b`)
	blockPattern = regexp.MustCompile(`\bdo(\s*\|[^|]*\|)?$`)
	inlineGroup  = regexp.MustCompile(`\bgroups?:\s*\[?[^\]]*:(development|test)\b`)
)

// Parse reads gem lines. Gems inside a group block that names :development
// or :test, or declared with such a group: option, are development dependencies.
func (p *GemfileParser) Parse(filepath string, content []byte) (models.PackageInfo, error) {
	info := models.NewPackageInfo(filepath, models.EcosystemRubyGems)

	var groups []bool // dev flag per open block
	inDev := func() bool {
		for _, dev := range groups {
			if dev {
				return true
			}
		}
		return false
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := groupPattern.FindStringSubmatch(line); m != nil {
			groups = append(groups, strings.Contains(m[1], ":development") || strings.Contains(m[1], ":test"))
			continue
		}
		if blockPattern.MatchString(line) {
			groups = append(groups, false)
			continue
		}
		if line == "end" {
			if len(groups) > 0 {
				groups = groups[:len(groups)-1]
			}
			continue
		}

		if m := gemPattern.FindStringSubmatch(line); m != nil {
			info.Add(m[1], m[2], inDev() || inlineGroup.MatchString(line))
		}
	}
	if err := sc.Err(); err != nil {
		return models.PackageInfo{}, err
	}
	return info, nil
}
