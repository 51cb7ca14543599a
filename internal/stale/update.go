package stale

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/docaudit-dev/docaudit/internal/config"
)

var timestampPattern = regexp.MustCompile(`\*\*Last Updated:\*\* \d{4}-\d{2}-\d{2}`)

// Change records one updated file.
type Change struct {
	File    string `json:"file"`
	Updates int    `json:"updates"`
}

// Result aggregates one refresh pass.
type Result struct {
	FilesUpdated int      `json:"files_updated"`
	FilesMissing []string `json:"files_missing,omitempty"`
	Changes      []Change `json:"changes,omitempty"`
}

// Updater applies configured literal/regex substitutions and timestamp
// refreshes to stale documentation files. A "{version}" placeholder in any
// replacement value expands to Version before the rule is applied.
type Updater struct {
	Root    string
	Version string
	Today   string // YYYY-MM-DD; defaults to the current date
	DryRun  bool
}

// Apply runs every configured rule set. Files listed in the config but absent
// on disk are reported, not fatal.
func (u *Updater) Apply(rules []config.StaleFile) (*Result, error) {
	today := u.Today
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	result := &Result{
		FilesMissing: make([]string, 0),
		Changes:      make([]Change, 0),
	}

	for _, rule := range rules {
		path := filepath.Join(u.Root, filepath.FromSlash(rule.Path))
		if _, err := os.Stat(path); err != nil {
			result.FilesMissing = append(result.FilesMissing, rule.Path)
			continue
		}

		updated, err := u.applyFile(path, rule, today)
		if err != nil {
			slog.Warn("failed to update stale doc", "path", rule.Path, "error", err)
			continue
		}
		if updated {
			result.FilesUpdated++
			result.Changes = append(result.Changes, Change{
				File:    rule.Path,
				Updates: len(rule.Replace) + len(rule.Regex) + boolToInt(rule.Timestamp),
			})
		}
	}

	return result, nil
}

func (u *Updater) applyFile(path string, rule config.StaleFile, today string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", rule.Path, err)
	}
	original := string(raw)
	content := original

	for _, replacement := range rule.Replace {
		content = strings.ReplaceAll(content, replacement.Old, u.expand(replacement.New))
	}
	for _, replacement := range rule.Regex {
		pattern, compileErr := regexp.Compile(replacement.Pattern)
		if compileErr != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", replacement.Pattern, compileErr)
		}
		content = pattern.ReplaceAllString(content, u.expand(replacement.Replacement))
	}
	if rule.Timestamp {
		content = upsertTimestamp(content, today)
	}

	if content == original {
		return false, nil
	}
	if u.DryRun {
		return true, nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", rule.Path, err)
	}
	return true, nil
}

func (u *Updater) expand(value string) string {
	if u.Version == "" {
		return value
	}
	return strings.ReplaceAll(value, "{version}", u.Version)
}

// upsertTimestamp refreshes an existing "Last Updated" marker or inserts one
// after the first heading.
func upsertTimestamp(content, today string) string {
	stamp := "**Last Updated:** " + today
	if strings.Contains(content, "**Last Updated:**") {
		return timestampPattern.ReplaceAllString(content, stamp)
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			inserted := make([]string, 0, len(lines)+2)
			inserted = append(inserted, lines[:i+1]...)
			inserted = append(inserted, "", stamp)
			inserted = append(inserted, lines[i+1:]...)
			return strings.Join(inserted, "\n")
		}
	}
	return content
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
