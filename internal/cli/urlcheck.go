package cli

import (
	"fmt"
	"time"

	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/benchkit/benchcat/internal/urlcheck"
	"github.com/spf13/cobra"
)

func newURLCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlcheck",
		Short: "Check URL reachability",
		Long: `Check every URL referenced by the catalog: fields whose key ends in
"url" plus url fields embedded in citation entries.

Each unique URL is fetched once; unreachable URLs are reported with an
explanation of the HTTP status. With --url a single URL is checked
instead of the catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Single-URL mode needs no catalog, only the timeout flag.
			if single, _ := cmd.Flags().GetString("url"); single != "" {
				timeout, _ := cmd.Flags().GetInt("url-timeout")
				checker := urlcheck.NewChecker(time.Duration(timeout) * time.Second)
				res := checker.Check(cmd.Context(), single)
				if !res.Valid {
					printFail(out, "%s: %s", single, res.Explanation)
					return NewExitError(ExitValidationFailed)
				}
				printOK(out, "%s is reachable", single)
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			checker := urlcheck.NewChecker(time.Duration(cfg.URLTimeout) * time.Second)

			rep := &catalog.Report{}
			cat, err := catalog.Load(cfg.Files, rep)
			if err != nil {
				return err
			}
			ext := urlcheck.Extract(catalog.FlattenAll(cat))

			spin := newSpinner(cfg.ShowProgress, "checking URLs")
			ok := urlcheck.Run(cmd.Context(), checker, ext, rep, func(name string) {
				if spin != nil {
					spin.Suffix = fmt.Sprintf(" checking URLs for %s", name)
				}
			})
			if spin != nil {
				spin.Stop()
			}

			if !ok {
				printReport(out, rep, verbose)
				printFail(out, "URL check failed")
				return NewExitError(ExitValidationFailed)
			}
			printOK(out, "all URLs for %d entries are reachable", cat.Len())
			return nil
		},
	}

	cmd.Flags().String("url", "", "Check a single URL instead of the catalog")
	cmd.Flags().Int("url-timeout", 10, "Per-request timeout in seconds")
	return cmd
}
