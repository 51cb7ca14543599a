package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docaudit-dev/docaudit/internal/config"
	"github.com/docaudit-dev/docaudit/internal/docindex"
	"github.com/docaudit-dev/docaudit/internal/linkfix"
	"github.com/docaudit-dev/docaudit/internal/report"
)

func RunLinksValidate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	rootPath, err := resolveRoot(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	matcher, err := newMatcher(rootPath, cfg)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	result, err := linkfix.Validate(rootPath, cfg.MarkdownExtensions, matcher)
	if err != nil {
		return fmt.Errorf("failed to validate links: %w", err)
	}

	summary := ValidateSummary{
		Mode:         "links validate",
		RootPath:     rootPath,
		FilesScanned: result.FilesScanned,
		TotalLinks:   result.TotalLinks,
		ValidLinks:   result.ValidLinks,
		BrokenLinks:  len(result.Broken),
		DurationMS:   time.Since(start).Milliseconds(),
		Broken:       result.Broken,
	}
	if err := PrintValidateSummary(summary, asJSON); err != nil {
		return err
	}

	if len(result.Broken) > 0 {
		return fmt.Errorf("found %d broken links", len(result.Broken))
	}
	return nil
}

func RunLinksFix(cmd *cobra.Command, args []string) error {
	start := time.Now()

	rootPath, err := resolveRoot(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	matcher, err := newMatcher(rootPath, cfg)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to read --dry-run flag: %w", err)
	}
	reportPath, err := cmd.Flags().GetString("report")
	if err != nil {
		return fmt.Errorf("failed to read --report flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	index, err := docindex.Build(rootPath, cfg.MarkdownExtensions, matcher)
	if err != nil {
		return fmt.Errorf("failed to index documentation files: %w", err)
	}

	fixer := &linkfix.Fixer{
		Root:  rootPath,
		Index: index,
		Scorer: &linkfix.Scorer{
			DocsDir:      cfg.DocsDir,
			ArchiveDirs:  cfg.ArchiveDirs,
			CategoryDirs: cfg.CategoryDirs,
		},
		Matcher:            matcher,
		MarkdownExtensions: cfg.MarkdownExtensions,
		DryRun:             dryRun,
	}
	result, err := fixer.Run()
	if err != nil {
		return fmt.Errorf("failed to repair links: %w", err)
	}

	reportPath = strings.TrimSpace(reportPath)
	if reportPath != "" {
		if !filepath.IsAbs(reportPath) {
			reportPath = filepath.Join(rootPath, reportPath)
		}
		date := time.Now().Format("2006-01-02")
		if err := report.WriteRepairReport(reportPath, result, date); err != nil {
			return err
		}
	}

	summary := FixSummary{
		Mode:           "links fix",
		RootPath:       rootPath,
		DryRun:         dryRun,
		FilesScanned:   result.FilesScanned,
		TotalLinks:     result.TotalLinks,
		BrokenLinks:    result.BrokenLinks,
		LinksFixed:     result.LinksFixed,
		LinksUnfixable: result.LinksUnfixable,
		FilesModified:  result.FilesModified,
		ReportFile:     reportPath,
		DurationMS:     time.Since(start).Milliseconds(),
	}

	return PrintFixSummary(summary, asJSON)
}
