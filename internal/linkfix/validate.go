package linkfix

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
)

// BrokenLink records a link whose resolved target does not exist on disk.
type BrokenLink struct {
	File   string `json:"file"` // root-relative source file
	Text   string `json:"link_text"`
	Target string `json:"link_url"`
}

// ValidationResult aggregates one validation pass.
type ValidationResult struct {
	FilesScanned int          `json:"files_scanned"`
	TotalLinks   int          `json:"total_links"`
	ValidLinks   int          `json:"valid_links"`
	Broken       []BrokenLink `json:"broken_links,omitempty"`
}

// ResolveTarget resolves a link target against the source file's directory,
// fragment stripped, and reports whether it exists on disk. This is the single
// existence check used both to flag broken links and to verify repairs.
func ResolveTarget(sourceFile, target string) (string, bool) {
	clean, _ := extract.SplitFragment(target)
	resolved := filepath.Clean(filepath.Join(filepath.Dir(sourceFile), filepath.FromSlash(clean)))
	_, err := os.Stat(resolved)
	return resolved, err == nil
}

// Validate scans every markdown file under root and checks each internal link.
func Validate(root string, exts []string, matcher *ignore.Matcher) (*ValidationResult, error) {
	result := &ValidationResult{Broken: make([]BrokenLink, 0)}

	err := walkMarkdown(root, exts, matcher, func(absPath, relPath string) {
		content, readErr := os.ReadFile(absPath)
		if readErr != nil {
			slog.Warn("failed to read markdown file", "path", relPath, "error", readErr)
			return
		}
		result.FilesScanned++

		for _, link := range extract.MarkdownLinks(string(content)) {
			result.TotalLinks++
			if _, ok := ResolveTarget(absPath, link.Target); ok {
				result.ValidLinks++
				continue
			}
			result.Broken = append(result.Broken, BrokenLink{
				File:   relPath,
				Text:   link.Text,
				Target: link.Target,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// walkMarkdown visits every markdown file under root in lexical order.
func walkMarkdown(root string, exts []string, matcher *ignore.Matcher, fn func(absPath, relPath string)) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("walk error", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matcher != nil && matcher.ShouldIgnore(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(rel)
		for _, want := range exts {
			if strings.EqualFold(ext, want) {
				fn(p, rel)
				return nil
			}
		}
		return nil
	})
}
