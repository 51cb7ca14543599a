package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/depgraph"
	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/fileutil"
	"github.com/docaudit-dev/docaudit/internal/linkfix"
)

// WriteGraphJSON persists a dependency graph as a nested mapping. JSON object
// keys are emitted sorted, so the snapshot is stable across runs.
func WriteGraphJSON(path string, g *depgraph.Graph) error {
	data, err := json.MarshalIndent(g.Edges, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	if _, err := fileutil.WriteIfChanged(path, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCyclesText persists circular reference chains, one numbered chain per
// line.
func WriteCyclesText(path string, cycles []depgraph.Cycle) error {
	var b strings.Builder
	if len(cycles) == 0 {
		b.WriteString("No circular dependencies found\n")
	} else {
		for i, cycle := range cycles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(cycle, " -> "))
		}
	}
	if _, err := fileutil.WriteIfChanged(path, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteRoutesCSV persists the full route inventory.
func WriteRoutesCSV(path string, routes []extract.Route) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"path", "method", "handler_file", "auth_required", "role_required", "type"}); err != nil {
		return fmt.Errorf("failed to encode routes: %w", err)
	}
	for _, route := range routes {
		record := []string{
			route.Path,
			route.Method,
			route.File,
			strconv.FormatBool(route.AuthRequired),
			route.RoleRequired,
			route.Kind,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to encode routes: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode routes: %w", err)
	}

	if _, err := fileutil.WriteIfChanged(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteAPIEndpointsCSV persists only the server-side API routes.
func WriteAPIEndpointsCSV(path string, routes []extract.Route) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"endpoint", "method", "handler_file", "auth_required", "role_required"}); err != nil {
		return fmt.Errorf("failed to encode endpoints: %w", err)
	}
	for _, route := range routes {
		if route.Kind != "express" || !strings.Contains(route.Path, "/api/") {
			continue
		}
		record := []string{
			route.Path,
			route.Method,
			route.File,
			strconv.FormatBool(route.AuthRequired),
			route.RoleRequired,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to encode endpoints: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode endpoints: %w", err)
	}

	if _, err := fileutil.WriteIfChanged(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

const (
	maxPatternRows   = 20
	maxModifiedFiles = 50
	maxFixesPerFile  = 10
	maxUnfixableRows = 100
)

// WriteRepairReport renders a markdown summary of one link-repair pass.
func WriteRepairReport(path string, result *linkfix.Result, date string) error {
	var b strings.Builder

	b.WriteString("# Link Repair Report\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n\n", date)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Files Scanned:** %d\n", result.FilesScanned)
	fmt.Fprintf(&b, "- **Total Links Found:** %d\n", result.TotalLinks)
	fmt.Fprintf(&b, "- **Broken Links Found:** %d\n", result.BrokenLinks)
	fmt.Fprintf(&b, "- **Links Fixed:** %d\n", result.LinksFixed)
	fmt.Fprintf(&b, "- **Links Unfixable:** %d\n", result.LinksUnfixable)
	fmt.Fprintf(&b, "- **Files Modified:** %d\n\n", result.FilesModified)

	if result.BrokenLinks > 0 {
		rate := float64(result.LinksFixed) / float64(result.BrokenLinks) * 100
		fmt.Fprintf(&b, "**Fix Rate:** %.1f%%\n", rate)
		fmt.Fprintf(&b, "**Remaining Broken Links:** %d\n\n", result.BrokenLinks-result.LinksFixed)
	}

	writePatterns(&b, result.FixPatterns)
	writeModified(&b, result.Modified)
	writeUnfixables(&b, result.Unfixables)

	if _, err := fileutil.WriteIfChanged(path, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writePatterns(b *strings.Builder, patterns map[string]int) {
	b.WriteString("## Top Fix Patterns\n\n")

	type entry struct {
		pattern string
		count   int
	}
	sorted := make([]entry, 0, len(patterns))
	for pattern, count := range patterns {
		sorted = append(sorted, entry{pattern, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].pattern < sorted[j].pattern
	})

	for i, e := range sorted {
		if i >= maxPatternRows {
			break
		}
		fmt.Fprintf(b, "- **%dx** %s\n", e.count, e.pattern)
	}
	b.WriteString("\n")
}

func writeModified(b *strings.Builder, modified []linkfix.ModifiedFile) {
	b.WriteString("## Files Modified\n\n")
	fmt.Fprintf(b, "Total: %d files\n\n", len(modified))

	sorted := make([]linkfix.ModifiedFile, len(modified))
	copy(sorted, modified)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	for i, file := range sorted {
		if i >= maxModifiedFiles {
			fmt.Fprintf(b, "... and %d more files\n\n", len(sorted)-maxModifiedFiles)
			break
		}
		fmt.Fprintf(b, "### %s\n", file.File)
		fmt.Fprintf(b, "**Fixes:** %d\n\n", file.Count)
		for j, fix := range file.Fixes {
			if j >= maxFixesPerFile {
				fmt.Fprintf(b, "- ... and %d more\n", len(file.Fixes)-maxFixesPerFile)
				break
			}
			fmt.Fprintf(b, "- `%s` -> `%s`\n", fix.Old, fix.New)
		}
		b.WriteString("\n")
	}
}

func writeUnfixables(b *strings.Builder, unfixables []linkfix.Unfixable) {
	b.WriteString("## Unfixable Links\n\n")
	fmt.Fprintf(b, "Total: %d\n\n", len(unfixables))

	byFile := make(map[string][]linkfix.Unfixable)
	files := make([]string, 0)
	for i, item := range unfixables {
		if i >= maxUnfixableRows {
			break
		}
		if _, seen := byFile[item.File]; !seen {
			files = append(files, item.File)
		}
		byFile[item.File] = append(byFile[item.File], item)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Fprintf(b, "### %s\n", file)
		for _, item := range byFile[file] {
			fmt.Fprintf(b, "- `%s`\n", item.Link)
			if item.Reason != "" {
				fmt.Fprintf(b, "  - Reason: %s\n", item.Reason)
				if item.Suggestion != "" {
					fmt.Fprintf(b, "  - Did you mean: `%s`\n", item.Suggestion)
				}
			} else if item.AttemptedFix != "" {
				fmt.Fprintf(b, "  - Attempted: `%s` (still broken)\n", item.AttemptedFix)
			}
		}
		b.WriteString("\n")
	}

	if len(unfixables) > maxUnfixableRows {
		fmt.Fprintf(b, "... and %d more unfixable links\n", len(unfixables)-maxUnfixableRows)
	}
}
