package latex

import (
	"fmt"
	"strings"

	"github.com/benchkit/benchcat/internal/catalog"
)

// documentPrefix is the standalone document preamble.
const documentPrefix = `\documentclass{article}
\usepackage{fullpage}
\usepackage{makecell}
\usepackage{enumitem}
\usepackage{hyperref}
\usepackage{amsmath}
\usepackage{pdflscape}
\usepackage{wasysym}
\usepackage{longtable}
\usepackage[style=ieee, url=true]{biblatex}
\addbibresource{benchmarks.bib}
\usepackage{caption}
\usepackage{url}
\usepackage{graphicx}
\graphicspath{{images/}}

\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{textcomp}
\usepackage{amssymb}
\usepackage{eurosym}
\usepackage{pifont}
\DeclareUnicodeCharacter{0394}{\Delta}

\tolerance=10000
\hfuzz=100pt
\emergencystretch=3em
\hbadness=10000

\begin{document}
\sloppy
`

const documentPostfix = `
\printbibliography
\end{document}
`

// Document assembles the composite LaTeX document: overview table,
// radar grid, and one \input per entry section, wrapped in the
// standalone preamble when requested.
func Document(rows []*catalog.FlatRow, standalone bool) string {
	var content []string
	if standalone {
		content = append(content, documentPrefix)
	}

	content = append(content, "", "\\section{Benchmark Overview Table}\n")
	content = append(content, "\\input{table.tex}\n", "\\clearpage\n")

	content = append(content, "", "\\section{Radar Chart Table}\n")
	content = append(content, "\\input{radar_grid.tex}\n", "\\clearpage\n")

	content = append(content, "", "\\section{Benchmark Details}\n")
	for _, row := range rows {
		id := row.String("id")
		if id == "" {
			id = "unknown"
		}
		content = append(content, fmt.Sprintf("\\input{section/%s}", SectionFilename(id)))
	}
	content = append(content, "\\clearpage\n")

	if standalone {
		content = append(content, documentPostfix)
	}
	return strings.Join(content, "\n")
}

