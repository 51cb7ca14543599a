package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docaudit",
		Short: "Audit source trees for dependency cycles and broken doc links",
		Long: `Docaudit scans a source tree, builds the import dependency graph,
and audits the documentation alongside it: circular dependencies are
detected and reported, broken markdown links are found and repaired
using confidence-scored candidate matching.

Reports are written to .docaudit/reports/ unless overridden.`,
	}

	// Dependency Commands
	depsCmd := &cobra.Command{
		Use:   "deps [path]",
		Short: "Build the dependency graph and detect circular dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunDeps,
	}
	depsCmd.Flags().StringSliceP("ext", "e", []string{}, "Source extensions to scan (default: from config)")
	depsCmd.Flags().String("extractor", "regex", "Import extraction strategy: regex|ast")
	depsCmd.Flags().String("report-dir", "", "Directory for graph.json and circulars.txt (default: <path>/.docaudit/reports)")
	depsCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	// Link Commands
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Validate and repair internal markdown links",
	}

	validateCmd := &cobra.Command{
		Use:          "validate [path]",
		Short:        "Report broken internal markdown links",
		Args:         cobra.MaximumNArgs(1),
		RunE:         RunLinksValidate,
		SilenceUsage: true,
	}
	validateCmd.Flags().Bool("json", false, "Print machine-readable validation results")

	fixCmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Repair broken internal markdown links in place",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunLinksFix,
	}
	fixCmd.Flags().Bool("dry-run", false, "Report what would change without writing files")
	fixCmd.Flags().String("report", "", "Write a markdown repair report to this path")
	fixCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	linksCmd.AddCommand(validateCmd, fixCmd)

	// Inventory Commands
	routesCmd := &cobra.Command{
		Use:   "routes [path]",
		Short: "Inventory HTTP and client routes into CSV reports",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunRoutes,
	}
	routesCmd.Flags().StringSliceP("ext", "e", []string{}, "Source extensions to scan (default: from config)")
	routesCmd.Flags().String("report-dir", "", "Directory for the CSV inventories (default: <path>/.docaudit/reports)")
	routesCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	staleCmd := &cobra.Command{
		Use:   "stale [path]",
		Short: "Refresh stale version strings and timestamps in docs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunStale,
	}
	staleCmd.Flags().Bool("dry-run", false, "Report what would change without writing files")
	staleCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docaudit %s\n", version)
		},
	}

	rootCmd.AddCommand(
		depsCmd,
		linksCmd,
		routesCmd,
		staleCmd,
		versionCmd,
	)

	return rootCmd
}
