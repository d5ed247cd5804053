package cli

import (
	"fmt"

	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate catalog formatting",
		Long: `Validate the catalog without writing any output.

Runs the unicode hygiene scan over every input file, checks entry name
formatting, and verifies all fields marked required (including
condition inheritance).

Returns exit code 0 when the catalog is clean, non-zero with itemized
diagnostics otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			verbose, _ := cmd.Flags().GetBool("verbose")

			clean := true
			for _, path := range cfg.Files {
				findings, err := catalog.ScanFileASCII(path)
				if err != nil {
					return fmt.Errorf("scanning %s: %w", path, err)
				}
				if len(findings) == 0 {
					printOK(out, "%s contains only ASCII characters", path)
					continue
				}
				clean = false
				printFail(out, "%s contains non-ASCII characters:", path)
				for _, f := range findings {
					fmt.Fprintf(out, "  %s: %s\n", path, f)
				}
			}

			rep := &catalog.Report{}
			cat, err := catalog.Load(cfg.Files, rep)
			if err != nil {
				return err
			}

			if catalog.CheckNames(cat, rep) {
				printOK(out, "all %d entry names are well formed", cat.Len())
			} else {
				clean = false
			}
			if catalog.CheckRequiredFields(cat, rep) {
				printOK(out, "all required fields are present")
			} else {
				clean = false
			}
			if rep.HasIssues() {
				printReport(out, rep, verbose)
				clean = false
			}

			if !clean {
				printFail(out, "catalog check failed")
				return NewExitError(ExitValidationFailed)
			}
			printOK(out, "catalog check passed")
			return nil
		},
	}
}
