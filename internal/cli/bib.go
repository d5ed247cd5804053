package cli

import (
	"errors"
	"fmt"

	"github.com/benchkit/benchcat/internal/bibtex"
	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newBibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bib",
		Short: "Print the collected bibliography",
		Long: `Collect every citation entry from the catalog and print the merged
BibTeX body to stdout.

Entries with malformed labels (uppercase letters, whitespace, or a
label already seen) are dropped and reported. With --strict any such
entry aborts the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			verbose, _ := cmd.Flags().GetBool("verbose")

			rep := &catalog.Report{}
			cat, err := catalog.Load(cfg.Files, rep)
			if err != nil {
				return err
			}

			bib, err := bibtex.Collect(cat, cfg.Strict, rep)
			if errors.Is(err, bibtex.ErrFatalIssues) {
				printReport(cmd.ErrOrStderr(), rep, verbose)
				printFail(cmd.ErrOrStderr(), "bibliography has fatal citation errors")
				return NewExitError(ExitValidationFailed)
			}
			if err != nil {
				return err
			}

			if rep.HasIssues() {
				printReport(cmd.ErrOrStderr(), rep, verbose)
			}
			fmt.Fprintln(out, bib.Body())
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "Abort on fatal citation errors")
	return cmd
}
