package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up at the scan root.
const FileName = ".docaudit.yml"

// Config carries the run configuration for every docaudit command.
type Config struct {
	// DocsDir is the directory name that holds the documentation tree,
	// rewarded during candidate scoring.
	DocsDir string `yaml:"docs_dir"`

	// Extensions are the source file extensions scanned for imports.
	Extensions []string `yaml:"extensions"`

	// MarkdownExtensions are the extensions treated as documentation files.
	MarkdownExtensions []string `yaml:"markdown_extensions"`

	// Aliases maps project import alias prefixes to root-relative prefixes,
	// e.g. "@/" -> "src/".
	Aliases map[string]string `yaml:"aliases"`

	// ArchiveDirs are directory names holding superseded documentation,
	// penalized during candidate scoring.
	ArchiveDirs []string `yaml:"archive_dirs"`

	// CategoryDirs are documentation category names that earn a scoring bonus
	// when shared between a broken link and a candidate.
	CategoryDirs []string `yaml:"category_dirs"`

	// Exclude holds extra gitignore-style rules appended after the defaults
	// and any .docauditignore rules.
	Exclude []string `yaml:"exclude"`

	// Stale configures the stale-doc refresh pass.
	Stale StaleConfig `yaml:"stale"`
}

// StaleConfig drives `docaudit stale`.
type StaleConfig struct {
	// Version is the current release version substituted into docs.
	Version string `yaml:"version"`

	// Files lists per-file update rules.
	Files []StaleFile `yaml:"files"`
}

// StaleFile is one file's update rule set.
type StaleFile struct {
	Path      string             `yaml:"path"`
	Replace   []Replacement      `yaml:"replace"`
	Regex     []RegexReplacement `yaml:"regex"`
	Timestamp bool               `yaml:"timestamp"`
}

type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

type RegexReplacement struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		DocsDir:            "docs",
		Extensions:         []string{".ts", ".tsx", ".js", ".jsx"},
		MarkdownExtensions: []string{".md"},
		Aliases:            map[string]string{"@/": "src/"},
		ArchiveDirs:        []string{"archive"},
		CategoryDirs:       []string{"how-to", "reference", "explanation", "tutorials"},
	}
}

// Load reads the config file at root, falling back to defaults when absent.
// Zero-valued fields in a loaded config are filled from the defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	defaults := Default()
	if cfg.DocsDir == "" {
		cfg.DocsDir = defaults.DocsDir
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaults.Extensions
	}
	if len(cfg.MarkdownExtensions) == 0 {
		cfg.MarkdownExtensions = defaults.MarkdownExtensions
	}
	if len(cfg.Aliases) == 0 {
		cfg.Aliases = defaults.Aliases
	}
	if len(cfg.ArchiveDirs) == 0 {
		cfg.ArchiveDirs = defaults.ArchiveDirs
	}
	if len(cfg.CategoryDirs) == 0 {
		cfg.CategoryDirs = defaults.CategoryDirs
	}

	return cfg, nil
}

// AliasPrefixes returns the alias prefixes in deterministic order, longest
// first so the most specific prefix wins during classification.
func (c *Config) AliasPrefixes() []string {
	prefixes := make([]string, 0, len(c.Aliases))
	for prefix := range c.Aliases {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}
