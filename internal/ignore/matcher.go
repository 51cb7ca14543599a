package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type rule struct {
	pattern  string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher applies gitignore-like rules with "last rule wins" behavior.
// Paths with a hidden directory segment are always excluded.
type Matcher struct {
	rules []rule
}

// NewMatcher builds a matcher from user-provided .docauditignore lines.
// Default excludes are prepended and can be overridden by user negation rules.
func NewMatcher(userRules []string) *Matcher {
	defaultRules := []string{
		"node_modules/",
		"vendor/",
		"dist/",
		"build/",
		"target/",
		"coverage/",
		"__pycache__/",
	}

	all := make([]string, 0, len(defaultRules)+len(userRules))
	all = append(all, defaultRules...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}

	return &Matcher{rules: rules}
}

// ShouldIgnore returns true when relPath should be excluded from a scan.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)
	if hasHiddenSegment(relPath, isDir) {
		return true
	}

	ignored := false
	for _, rule := range m.rules {
		if ruleMatches(rule, relPath, isDir) {
			ignored = !rule.negated
		}
	}
	return ignored
}

// hasHiddenSegment reports whether any directory segment starts with a dot.
// The final segment of a file path is its name, not a directory, so a hidden
// file at the scan root stays visible.
func hasHiddenSegment(relPath string, isDir bool) bool {
	segments := strings.Split(relPath, "/")
	if !isDir && len(segments) > 0 {
		segments = segments[:len(segments)-1]
	}
	for _, segment := range segments {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	if strings.HasPrefix(line, "/") {
		parsed.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}
	parsed.pattern = line
	return parsed, true
}

func ruleMatches(r rule, relPath string, isDir bool) bool {
	if r.dirOnly {
		if matchDirectoryRule(r, relPath) {
			return true
		}
		return isDir && matchPattern(r.pattern, filepath.Base(relPath))
	}

	if r.anchored {
		return matchPattern(r.pattern, relPath)
	}

	if strings.Contains(r.pattern, "/") {
		if matchPattern(r.pattern, relPath) {
			return true
		}
		// Unanchored path patterns may match at any depth.
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if matchPattern(r.pattern, strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	if matchPattern(r.pattern, filepath.Base(relPath)) {
		return true
	}
	for _, segment := range strings.Split(relPath, "/") {
		if matchPattern(r.pattern, segment) {
			return true
		}
	}
	return false
}

func matchDirectoryRule(r rule, relPath string) bool {
	if relPath == r.pattern || strings.HasPrefix(relPath, r.pattern+"/") {
		return true
	}
	if r.anchored {
		return false
	}

	parts := strings.Split(relPath, "/")
	for i := range parts {
		if matchPattern(r.pattern, strings.Join(parts[:i+1], "/")) {
			return true
		}
		if matchPattern(r.pattern, parts[i]) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, value string) bool {
	ok, err := doublestar.Match(pattern, value)
	return err == nil && ok
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return path
}
