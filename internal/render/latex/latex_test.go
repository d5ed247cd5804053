// Package latex tests LaTeX escaping, column resolution, and table
// rendering.
// Related: internal/render/latex/table.go, internal/render/latex/columns.go
// Tags: latex, render, table, escape, columns
package latex

import (
	"strings"
	"testing"

	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(pairs ...any) *catalog.FlatRow {
	r := catalog.NewFlatRow()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   any
		want string
	}{
		"specials":         {in: "50% of $10 & more", want: `50\% of \$10 \& more`},
		"underscore":       {in: "task_types", want: `task\_types`},
		"braces":           {in: "{x}", want: `\{x\}`},
		"tilde and caret":  {in: "a~b^c", want: `a\textasciitilde{}b\textasciicircum{}c`},
		"backslash passes": {in: `\emph{x}`, want: `\emph\{x\}`},
		"non-string":       {in: 42, want: "42"},
		"nil":              {in: nil, want: ""},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Escape(tc.in))
		})
	}
}

func TestResolveColumns(t *testing.T) {
	t.Parallel()

	t.Run("empty request yields defaults", func(t *testing.T) {
		t.Parallel()

		cols, err := ResolveColumns(nil, false)
		require.NoError(t, err)
		assert.Equal(t, DefaultColumns, cols)
	})

	t.Run("invalid column is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveColumns([]string{"name", "bogus"}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid column name: bogus")
	})

	t.Run("no-ratings strips rating columns", func(t *testing.T) {
		t.Parallel()

		cols, err := ResolveColumns([]string{"name", "ratings", "ratings.dataset.rating", "cite"}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "cite"}, cols)
	})

	t.Run("defaults lose ratings with no-ratings", func(t *testing.T) {
		t.Parallel()

		cols, err := ResolveColumns(nil, true)
		require.NoError(t, err)
		assert.NotContains(t, cols, "ratings")
	})
}

func TestTable(t *testing.T) {
	t.Parallel()

	rows := []*catalog.FlatRow{
		row("name", "Foo_Bench", "id", "foo_bench", "domain", "code",
			"keywords", []any{"a", "b"},
			"cite", "@misc{foo2020, title={T}}",
			"url", "https://example.com"),
	}

	out := Table(rows, []string{"name", "domain", "keywords", "cite"})

	assert.Contains(t, out, `\begin{landscape}`)
	assert.Contains(t, out, `\begin{longtable}`)
	assert.Contains(t, out, `\endfirsthead`)
	assert.Contains(t, out, `\endlastfoot`)
	assert.Contains(t, out, `Foo\_Bench`, "cell content is escaped")
	assert.Contains(t, out, "a, b", "lists are comma joined")
	assert.Contains(t, out, `\cite{foo2020}`)
	assert.Contains(t, out, `\href{https://example.com}{$\Rightarrow$}`, "cite cell links the url")
	assert.Contains(t, out, `\textbf{Name}`)
}

func TestTable_RatingsColumn(t *testing.T) {
	t.Parallel()

	rows := []*catalog.FlatRow{row("name", "Foo", "id", "foo")}
	out := Table(rows, []string{"name", "ratings"})

	assert.Contains(t, out, `\includegraphics[width=0.15\textwidth]{foo_radar.pdf}`)
}

func TestTable_ColumnWidthsNormalized(t *testing.T) {
	t.Parallel()

	// name (2.5) and url (0.7) normalize against their sum.
	out := Table(nil, []string{"name", "url"})
	assert.Contains(t, out, `p{0.78\textwidth}`)
	assert.Contains(t, out, `p{0.22\textwidth}`)
}

func TestSection(t *testing.T) {
	t.Parallel()

	rec := &catalog.Record{Name: "Foo Bench", ID: "foo_bench"}
	r := row(
		"name", "Foo Bench",
		"id", "foo_bench",
		"domain", "code & data",
		"homepageurl", "https://example.com",
		"keywords", []any{"x", "y"},
		"cite", "@misc{foo2020, title={T}}",
	)

	out := Section(rec, r)

	assert.Contains(t, out, `\section{Foo Bench}`)
	assert.Contains(t, out, `\item[domain:] code \& data`)
	assert.Contains(t, out, `\href{https://example.com}{https://example.com}`)
	assert.Contains(t, out, `\item[Citations:] \cite{foo2020}`)
	assert.Contains(t, out, `foo_bench_radar.pdf`)
	assert.Contains(t, out, `\clearpage`)
	assert.NotContains(t, out, `\item[name`, "name is not repeated in the list")
}

func TestSectionFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "foo_bench.tex", SectionFilename("foo_bench"))
}

func TestDocument(t *testing.T) {
	t.Parallel()

	rows := []*catalog.FlatRow{
		row("name", "Foo", "id", "foo"),
		row("name", "Bar", "id", "bar"),
	}

	t.Run("fragment", func(t *testing.T) {
		t.Parallel()

		out := Document(rows, false)
		assert.Contains(t, out, `\section{Benchmark Overview Table}`)
		assert.Contains(t, out, `\input{table.tex}`)
		assert.Contains(t, out, `\input{radar_grid.tex}`)
		assert.Contains(t, out, `\input{section/foo.tex}`)
		assert.Contains(t, out, `\input{section/bar.tex}`)
		assert.NotContains(t, out, `\begin{document}`)
	})

	t.Run("standalone wraps the preamble", func(t *testing.T) {
		t.Parallel()

		out := Document(rows, true)
		assert.Contains(t, out, `\documentclass{article}`)
		assert.Contains(t, out, `\addbibresource{benchmarks.bib}`)
		assert.Contains(t, out, `\printbibliography`)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), `\end{document}`))
	})
}

func TestRadarGrid(t *testing.T) {
	t.Parallel()

	rows := make([]*catalog.FlatRow, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		rows = append(rows, row("name", id, "id", id))
	}

	out := RadarGrid(rows, 2, 3, "pdf")

	assert.Contains(t, out, "images/a_radar.pdf")
	assert.Contains(t, out, "images/g_radar.pdf")
	assert.Contains(t, out, "Radar chart overview (page 1)")
	assert.Contains(t, out, "Radar chart overview (page 2)", "7 charts at 6 per page need 2 pages")
	assert.Contains(t, out, `width=0.4900\textwidth`)
}

func TestRatingValues(t *testing.T) {
	t.Parallel()

	r := row(
		"ratings.dataset.rating", 7,
		"ratings.dataset.reason", "solid",
		"ratings.metrics.rating", 3.5,
		"ratings.documentation.rating", "bad data",
	)

	got := RatingValues(r)
	assert.Equal(t, map[string]float64{
		"dataset":       7,
		"metrics":       3.5,
		"documentation": 0,
	}, got)
}
