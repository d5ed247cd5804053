package cli

import (
	"fmt"
	"path/filepath"

	"github.com/benchkit/benchcat/internal/bibtex"
	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/benchkit/benchcat/internal/config"
	"github.com/benchkit/benchcat/internal/render"
	"github.com/benchkit/benchcat/internal/render/latex"
	"github.com/benchkit/benchcat/internal/render/markdown"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render catalog artifacts",
		Long: `Load the catalog, flatten every entry, and render the configured
output format.

tex writes table.tex, radar_grid.tex, benchmarks.bib, one section file
per entry, and the composite benchmarks.tex under <outdir>/tex.
md writes table.md and one page per entry under <outdir>/md.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	cmd.Flags().String("format", "tex", "Output format (tex or md)")
	cmd.Flags().StringP("outdir", "o", "./content", "Output directory")
	cmd.Flags().StringSlice("columns", nil, "Subset of columns to include")
	cmd.Flags().Int("author-truncation", 9999, "Truncate author lists on index pages")
	cmd.Flags().Bool("standalone", false, "Include full LaTeX document preamble (tex only)")
	cmd.Flags().Bool("with-citation", false, "Add a citation block to entry pages (md only)")
	cmd.Flags().Bool("no-ratings", false, "Remove rating columns from output")
	cmd.Flags().Bool("required", false, "Fail when required fields are missing")
	cmd.Flags().Bool("strict", false, "Abort on fatal citation errors")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Configuration) error {
	out := cmd.OutOrStdout()
	verbose, _ := cmd.Flags().GetBool("verbose")
	rep := &catalog.Report{}

	cat, err := catalog.Load(cfg.Files, rep)
	if err != nil {
		return err
	}

	if cfg.RequiredFieldPass && !catalog.CheckRequiredFields(cat, rep) {
		printReport(out, rep, verbose)
		printFail(out, "required field check failed")
		return NewExitError(ExitValidationFailed)
	}

	rows := catalog.FlattenAll(cat)
	columns, err := latex.ResolveColumns(cfg.Columns, cfg.NoRatings)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "md":
		err = generateMarkdown(cfg, cat, rows, columns)
	case "tex":
		err = generateLatex(cfg, cat, rows, columns, rep)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if err != nil {
		return err
	}

	if rep.HasIssues() {
		printReport(out, rep, verbose)
	}
	printOK(out, "rendered %d entries to %s", cat.Len(), cfg.OutDir)
	return nil
}

func generateLatex(cfg *config.Configuration, cat *catalog.Catalog, rows []*catalog.FlatRow, columns []string, rep *catalog.Report) error {
	texDir := filepath.Join(cfg.OutDir, "tex")

	if err := render.WriteFile(filepath.Join(texDir, "table.tex"), latex.Table(rows, columns)); err != nil {
		return err
	}
	if err := render.WriteFile(filepath.Join(texDir, "radar_grid.tex"), latex.RadarGrid(rows, 5, 5, "pdf")); err != nil {
		return err
	}

	bib, err := bibtex.Collect(cat, cfg.Strict, rep)
	if err != nil {
		return err
	}
	if err := render.WriteFile(filepath.Join(texDir, "benchmarks.bib"), bib.Body()); err != nil {
		return err
	}

	for i, rec := range cat.Records {
		section := latex.Section(rec, rows[i])
		path := filepath.Join(texDir, "section", latex.SectionFilename(rec.ID))
		if err := render.WriteFile(path, section); err != nil {
			return err
		}
	}

	doc := latex.Document(rows, cfg.Standalone)
	return render.WriteFile(filepath.Join(texDir, "benchmarks.tex"), doc)
}

func generateMarkdown(cfg *config.Configuration, cat *catalog.Catalog, rows []*catalog.FlatRow, columns []string) error {
	mdDir := filepath.Join(cfg.OutDir, "md")

	if err := render.WriteFile(filepath.Join(mdDir, "table.md"), markdown.Table(rows, columns)); err != nil {
		return err
	}
	for i, rec := range cat.Records {
		page := markdown.Entry(rec, rows[i], cfg.WithCitation, cfg.AuthorTruncation)
		path := filepath.Join(mdDir, "entries", rec.ID+".md")
		if err := render.WriteFile(path, page); err != nil {
			return err
		}
	}
	return nil
}
