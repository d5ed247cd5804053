// Package cli provides the Cobra-based command surface for benchcat:
// artifact generation (generate), catalog checks (check), URL
// reachability (urlcheck), bibliography extraction (bib), and version.
package cli

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the full command tree. A fresh tree is constructed
// per invocation so flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchcat",
		Short: "benchmark catalog processing",
		Long: `benchcat turns a YAML benchmark catalog into rendered artifacts:
a LaTeX or Markdown overview table, per-entry detail pages, a BibTeX
bibliography, and a radar chart grid.

Catalog entries are validated along the way: required fields, citation
label integrity, name hygiene, and URL reachability.`,
		Example: `  # Validate the catalog without writing output
  benchcat check --files source/benchmarks.yaml

  # Render the LaTeX artifacts
  benchcat generate --files source/benchmarks.yaml --outdir ./content

  # Render Markdown pages with citation blocks
  benchcat generate --format md --with-citation

  # Check every URL referenced by the catalog
  benchcat urlcheck --files source/benchmarks.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", ".benchcat/config.json", "Path to config file")
	cmd.PersistentFlags().StringSliceP("files", "f", nil, "YAML catalog file(s) to process")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newURLCheckCmd(),
		newBibCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
