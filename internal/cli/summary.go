package cli

import (
	"fmt"
	"strings"

	"github.com/docaudit-dev/docaudit/internal/fileutil"
	"github.com/docaudit-dev/docaudit/internal/linkfix"
	"github.com/docaudit-dev/docaudit/internal/stale"
)

type DepsSummary struct {
	Mode        string   `json:"mode"`
	RootPath    string   `json:"root_path"`
	ReportDir   string   `json:"report_dir,omitempty"`
	Modules     int      `json:"modules"`
	Edges       int      `json:"edges"`
	Cycles      int      `json:"cycles"`
	DurationMS  int64    `json:"duration_ms"`
	CycleChains []string `json:"cycle_chains,omitempty"`
}

type ValidateSummary struct {
	Mode         string               `json:"mode"`
	RootPath     string               `json:"root_path"`
	FilesScanned int                  `json:"files_scanned"`
	TotalLinks   int                  `json:"total_links"`
	ValidLinks   int                  `json:"valid_links"`
	BrokenLinks  int                  `json:"broken_links"`
	DurationMS   int64                `json:"duration_ms"`
	Broken       []linkfix.BrokenLink `json:"broken,omitempty"`
}

type FixSummary struct {
	Mode           string `json:"mode"`
	RootPath       string `json:"root_path"`
	DryRun         bool   `json:"dry_run"`
	FilesScanned   int    `json:"files_scanned"`
	TotalLinks     int    `json:"total_links"`
	BrokenLinks    int    `json:"broken_links"`
	LinksFixed     int    `json:"links_fixed"`
	LinksUnfixable int    `json:"links_unfixable"`
	FilesModified  int    `json:"files_modified"`
	ReportFile     string `json:"report_file,omitempty"`
	DurationMS     int64  `json:"duration_ms"`
}

type RoutesSummary struct {
	Mode         string `json:"mode"`
	RootPath     string `json:"root_path"`
	ReportDir    string `json:"report_dir,omitempty"`
	FilesScanned int    `json:"files_scanned"`
	Routes       int    `json:"routes"`
	APIEndpoints int    `json:"api_endpoints"`
	DurationMS   int64  `json:"duration_ms"`
}

type StaleSummary struct {
	Mode         string         `json:"mode"`
	RootPath     string         `json:"root_path"`
	DryRun       bool           `json:"dry_run"`
	FilesUpdated int            `json:"files_updated"`
	FilesMissing []string       `json:"files_missing,omitempty"`
	Changes      []stale.Change `json:"changes,omitempty"`
	DurationMS   int64          `json:"duration_ms"`
}

func PrintDepsSummary(summary DepsSummary, asJSON bool) error {
	if asJSON {
		return encodeJSON(summary)
	}

	fmt.Printf("deps: modules=%d edges=%d cycles=%d duration=%dms\n",
		summary.Modules, summary.Edges, summary.Cycles, summary.DurationMS)
	if summary.ReportDir != "" {
		fmt.Printf("reports: %s\n", summary.ReportDir)
	}
	for i, chain := range summary.CycleChains {
		fmt.Printf("  %d. %s\n", i+1, chain)
	}
	return nil
}

func PrintValidateSummary(summary ValidateSummary, asJSON bool) error {
	if asJSON {
		return encodeJSON(summary)
	}

	fmt.Printf("links validate: files=%d links=%d valid=%d broken=%d duration=%dms\n",
		summary.FilesScanned, summary.TotalLinks, summary.ValidLinks, summary.BrokenLinks, summary.DurationMS)
	for _, broken := range summary.Broken {
		fmt.Printf("  %s: [%s](%s)\n", broken.File, broken.Text, broken.Target)
	}
	return nil
}

func PrintFixSummary(summary FixSummary, asJSON bool) error {
	if asJSON {
		return encodeJSON(summary)
	}

	mode := "links fix"
	if summary.DryRun {
		mode = "links fix (dry-run)"
	}
	fmt.Printf("%s: files=%d links=%d broken=%d fixed=%d unfixable=%d modified=%d duration=%dms\n",
		mode,
		summary.FilesScanned,
		summary.TotalLinks,
		summary.BrokenLinks,
		summary.LinksFixed,
		summary.LinksUnfixable,
		summary.FilesModified,
		summary.DurationMS,
	)
	if summary.ReportFile != "" {
		fmt.Printf("report: %s\n", summary.ReportFile)
	}
	return nil
}

func PrintRoutesSummary(summary RoutesSummary, asJSON bool) error {
	if asJSON {
		return encodeJSON(summary)
	}

	fmt.Printf("routes: files=%d routes=%d api=%d duration=%dms\n",
		summary.FilesScanned, summary.Routes, summary.APIEndpoints, summary.DurationMS)
	if summary.ReportDir != "" {
		fmt.Printf("reports: %s\n", summary.ReportDir)
	}
	return nil
}

func PrintStaleSummary(summary StaleSummary, asJSON bool) error {
	if asJSON {
		return encodeJSON(summary)
	}

	mode := "stale"
	if summary.DryRun {
		mode = "stale (dry-run)"
	}
	fmt.Printf("%s: updated=%d missing=%d duration=%dms\n",
		mode, summary.FilesUpdated, len(summary.FilesMissing), summary.DurationMS)
	for _, change := range summary.Changes {
		fmt.Printf("  %s (%d updates)\n", change.File, change.Updates)
	}
	if len(summary.FilesMissing) > 0 {
		fmt.Printf("missing files (%d): %s\n", len(summary.FilesMissing), SummarizePaths(summary.FilesMissing, 8))
	}
	return nil
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}

func encodeJSON(summary any) error {
	return fileutil.PrintJSON(summary)
}
