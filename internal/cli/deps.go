package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docaudit-dev/docaudit/internal/config"
	"github.com/docaudit-dev/docaudit/internal/depgraph"
	"github.com/docaudit-dev/docaudit/internal/report"
)

func RunDeps(cmd *cobra.Command, args []string) error {
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
	exts, err := parseExtensions(cmd, cfg.Extensions)
	if err != nil {
		return err
	}
	extractor, err := newExtractor(cmd, cfg)
	if err != nil {
		return err
	}
	reportDir, err := resolveReportDir(cmd, rootPath)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	builder := &depgraph.Builder{
		Extensions: exts,
		Aliases:    cfg.Aliases,
		Matcher:    matcher,
		Extractor:  extractor,
	}
	g, err := builder.Build(rootPath)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	cycles := depgraph.DetectCycles(g)

	if err := report.WriteGraphJSON(filepath.Join(reportDir, "graph.json"), g); err != nil {
		return err
	}
	if err := report.WriteCyclesText(filepath.Join(reportDir, "circulars.txt"), cycles); err != nil {
		return err
	}

	edges := 0
	for _, deps := range g.Edges {
		edges += len(deps)
	}
	chains := make([]string, 0, len(cycles))
	for _, cycle := range cycles {
		chains = append(chains, strings.Join(cycle, " -> "))
	}

	summary := DepsSummary{
		Mode:        "deps",
		RootPath:    rootPath,
		ReportDir:   reportDir,
		Modules:     len(g.Edges),
		Edges:       edges,
		Cycles:      len(cycles),
		CycleChains: chains,
		DurationMS:  time.Since(start).Milliseconds(),
	}

	return PrintDepsSummary(summary, asJSON)
}
