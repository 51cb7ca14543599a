package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docaudit-dev/docaudit/internal/config"
	"github.com/docaudit-dev/docaudit/internal/stale"
)

func RunStale(cmd *cobra.Command, args []string) error {
	start := time.Now()

	rootPath, err := resolveRoot(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to read --dry-run flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	if len(cfg.Stale.Files) == 0 {
		return fmt.Errorf("no stale-doc rules configured; add a stale section to %s", config.FileName)
	}

	updater := &stale.Updater{Root: rootPath, Version: cfg.Stale.Version, DryRun: dryRun}
	result, err := updater.Apply(cfg.Stale.Files)
	if err != nil {
		return fmt.Errorf("failed to refresh stale docs: %w", err)
	}

	summary := StaleSummary{
		Mode:         "stale",
		RootPath:     rootPath,
		DryRun:       dryRun,
		FilesUpdated: result.FilesUpdated,
		FilesMissing: result.FilesMissing,
		Changes:      result.Changes,
		DurationMS:   time.Since(start).Milliseconds(),
	}

	return PrintStaleSummary(summary, asJSON)
}
