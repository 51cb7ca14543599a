package linkfix

import (
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/docindex"
	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
)

// Fix is one applied replacement.
type Fix struct {
	File string `json:"file"`
	Old  string `json:"old"`
	New  string `json:"new"`
	Text string `json:"text"`
}

// Unfixable is one broken link the repair pass could not resolve.
type Unfixable struct {
	File         string `json:"file"`
	Link         string `json:"link"`
	Reason       string `json:"reason,omitempty"`
	AttemptedFix string `json:"attempted_fix,omitempty"`
	Suggestion   string `json:"suggestion,omitempty"`
}

// ModifiedFile groups the fixes applied to one file.
type ModifiedFile struct {
	File  string `json:"file"`
	Count int    `json:"count"`
	Fixes []Fix  `json:"fixes"`
}

// Result aggregates one repair pass.
type Result struct {
	FilesScanned   int            `json:"files_scanned"`
	TotalLinks     int            `json:"total_links"`
	BrokenLinks    int            `json:"broken_links"`
	LinksFixed     int            `json:"links_fixed"`
	LinksUnfixable int            `json:"links_unfixable"`
	FilesModified  int            `json:"files_modified"`
	Modified       []ModifiedFile `json:"modified_files,omitempty"`
	Unfixables     []Unfixable    `json:"unfixable,omitempty"`
	FixPatterns    map[string]int `json:"fix_patterns,omitempty"`
}

// Fixer applies confidence-scored replacements for broken markdown links.
// The index must be built from the same root before the pass starts; it is
// not refreshed mid-run.
type Fixer struct {
	Root               string
	Index              *docindex.Index
	Scorer             *Scorer
	Matcher            *ignore.Matcher
	MarkdownExtensions []string
	DryRun             bool
}

// Run repairs every markdown file under the root. No per-file failure stops
// the pass: the job is to maximize coverage and report what could not be
// resolved.
func (f *Fixer) Run() (*Result, error) {
	result := &Result{
		Modified:    make([]ModifiedFile, 0),
		Unfixables:  make([]Unfixable, 0),
		FixPatterns: make(map[string]int),
	}

	err := walkMarkdown(f.Root, f.MarkdownExtensions, f.Matcher, func(absPath, relPath string) {
		fileResult := f.fixFile(absPath, relPath)

		result.FilesScanned++
		result.TotalLinks += fileResult.linksFound
		result.BrokenLinks += fileResult.brokenLinks
		result.LinksFixed += fileResult.fixedLinks
		result.LinksUnfixable += len(fileResult.unfixables)
		result.Unfixables = append(result.Unfixables, fileResult.unfixables...)
		for pattern, count := range fileResult.patterns {
			result.FixPatterns[pattern] += count
		}
		if fileResult.fixedLinks > 0 {
			result.FilesModified++
			result.Modified = append(result.Modified, ModifiedFile{
				File:  relPath,
				Count: fileResult.fixedLinks,
				Fixes: fileResult.fixes,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type fileResult struct {
	linksFound  int
	brokenLinks int
	fixedLinks  int
	fixes       []Fix
	unfixables  []Unfixable
	patterns    map[string]int
}

func (f *Fixer) fixFile(absPath, relPath string) fileResult {
	result := fileResult{patterns: make(map[string]int)}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		slog.Warn("failed to read markdown file", "path", relPath, "error", err)
		return result
	}
	original := string(raw)
	content := original

	links := extract.MarkdownLinks(original)
	result.linksFound = len(links)

	for _, link := range links {
		if _, ok := ResolveTarget(absPath, link.Target); ok {
			continue
		}
		result.brokenLinks++

		cleanTarget, fragment := extract.SplitFragment(link.Target)
		candidates := f.Index.Lookup(path.Base(cleanTarget))
		choice, ok := f.Scorer.Choose(cleanTarget, candidates)
		if !ok {
			result.unfixables = append(result.unfixables, Unfixable{
				File:       relPath,
				Link:       link.Target,
				Reason:     "no candidates",
				Suggestion: NearestName(path.Base(cleanTarget), f.Index.Names()),
			})
			continue
		}

		newLink := RelativeTo(absPath, choice) + fragment
		replacement := extract.Link{Text: link.Text, Target: newLink}

		// The fix must pass the same existence check that flagged the link.
		if _, ok := ResolveTarget(absPath, newLink); !ok {
			result.unfixables = append(result.unfixables, Unfixable{
				File:         relPath,
				Link:         link.Target,
				AttemptedFix: newLink,
			})
			continue
		}

		// Replace only the first occurrence so an identical literal elsewhere
		// in the file is left alone.
		content = strings.Replace(content, link.Markdown(), replacement.Markdown(), 1)
		result.fixedLinks++
		result.fixes = append(result.fixes, Fix{
			File: relPath,
			Old:  link.Target,
			New:  newLink,
			Text: link.Text,
		})
		result.patterns[path.Base(link.Target)+" -> "+path.Base(newLink)]++
	}

	if f.DryRun || content == original {
		return result
	}

	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		// The file keeps its pre-write state; the run continues.
		slog.Warn("failed to write markdown file", "path", relPath, "error", err)
	}
	return result
}
