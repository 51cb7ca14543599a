package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docaudit-dev/docaudit/internal/config"
	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
)

// DefaultReportDir is where report files land, relative to the scan root.
const DefaultReportDir = ".docaudit/reports"

func resolveRoot(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	rootPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return "", fmt.Errorf("failed to access path %q: %w", rootPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", rootPath)
	}

	return rootPath, nil
}

func LoadIgnoreRules(rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, ".docauditignore")
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .docauditignore: %w", err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse .docauditignore: %w", err)
	}

	return rules, nil
}

// newMatcher stacks .docauditignore rules and config excludes on top of the
// built-in defaults. Config rules come last so they win on conflicts.
func newMatcher(rootPath string, cfg *config.Config) (*ignore.Matcher, error) {
	rules, err := LoadIgnoreRules(rootPath)
	if err != nil {
		return nil, err
	}
	rules = append(rules, cfg.Exclude...)
	return ignore.NewMatcher(rules), nil
}

func newExtractor(cmd *cobra.Command, cfg *config.Config) (extract.Extractor, error) {
	value, err := cmd.Flags().GetString("extractor")
	if err != nil {
		return nil, fmt.Errorf("failed to read --extractor flag: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "regex":
		return extract.NewRegexExtractor(cfg.AliasPrefixes()), nil
	case "ast":
		return extract.NewASTExtractor(cfg.AliasPrefixes()), nil
	default:
		return nil, fmt.Errorf("unsupported extractor %q (supported: regex, ast)", value)
	}
}

// parseExtensions reads --ext, normalizing entries to a leading dot. An empty
// flag falls back to the configured extensions.
func parseExtensions(cmd *cobra.Command, fallback []string) ([]string, error) {
	values, err := cmd.Flags().GetStringSlice("ext")
	if err != nil {
		return nil, fmt.Errorf("failed to read --ext flag: %w", err)
	}
	if len(values) == 0 {
		return fallback, nil
	}

	exts := make([]string, 0, len(values))
	for _, value := range values {
		ext := strings.TrimSpace(value)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return fallback, nil
	}
	return exts, nil
}

func resolveReportDir(cmd *cobra.Command, rootPath string) (string, error) {
	value, err := cmd.Flags().GetString("report-dir")
	if err != nil {
		return "", fmt.Errorf("failed to read --report-dir flag: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return filepath.Join(rootPath, filepath.FromSlash(DefaultReportDir)), nil
	}
	if !filepath.IsAbs(value) {
		value = filepath.Join(rootPath, value)
	}
	return value, nil
}
