package cli

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docaudit-dev/docaudit/internal/config"
	"github.com/docaudit-dev/docaudit/internal/extract"
	"github.com/docaudit-dev/docaudit/internal/ignore"
	"github.com/docaudit-dev/docaudit/internal/report"
)

func RunRoutes(cmd *cobra.Command, args []string) error {
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
	reportDir, err := resolveReportDir(cmd, rootPath)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	routes, filesScanned, err := collectRoutes(rootPath, exts, matcher)
	if err != nil {
		return fmt.Errorf("failed to scan routes: %w", err)
	}

	if err := report.WriteRoutesCSV(filepath.Join(reportDir, "routes_inventory.csv"), routes); err != nil {
		return err
	}
	if err := report.WriteAPIEndpointsCSV(filepath.Join(reportDir, "api_endpoints.csv"), routes); err != nil {
		return err
	}

	apiEndpoints := 0
	for _, route := range routes {
		if route.Kind == "express" && strings.Contains(route.Path, "/api/") {
			apiEndpoints++
		}
	}

	summary := RoutesSummary{
		Mode:         "routes",
		RootPath:     rootPath,
		ReportDir:    reportDir,
		FilesScanned: filesScanned,
		Routes:       len(routes),
		APIEndpoints: apiEndpoints,
		DurationMS:   time.Since(start).Milliseconds(),
	}

	return PrintRoutesSummary(summary, asJSON)
}

// collectRoutes walks every matching source file under root and extracts its
// route registrations. Auth requirements are detected per file and stamped
// onto that file's server-side routes.
func collectRoutes(root string, exts []string, matcher *ignore.Matcher) ([]extract.Route, int, error) {
	routes := make([]extract.Route, 0)
	filesScanned := 0

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
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
		if !hasExtension(rel, exts) {
			return nil
		}

		content, readErr := os.ReadFile(p)
		if readErr != nil {
			slog.Warn("failed to read source file", "path", rel, "error", readErr)
			return nil
		}
		filesScanned++

		fileRoutes := extract.Routes(rel, content)
		if len(fileRoutes) == 0 {
			return nil
		}

		authRequired, roleRequired := extract.AuthRequirements(content)
		for i := range fileRoutes {
			if fileRoutes[i].Kind != "express" {
				continue
			}
			fileRoutes[i].AuthRequired = authRequired
			fileRoutes[i].RoleRequired = roleRequired
		}
		routes = append(routes, fileRoutes...)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return routes, filesScanned, nil
}

func hasExtension(rel string, exts []string) bool {
	ext := filepath.Ext(rel)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
