package latex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/benchkit/benchcat/internal/bibtex"
	"github.com/benchkit/benchcat/internal/catalog"
)

const descriptionStyle = "[labelwidth=5em, labelsep=1em, leftmargin=*, align=left, itemsep=0.3em, parsep=0em]"

// sectionSkipFields are rendered specially or not at all on entry pages.
var sectionSkipFields = map[string]bool{
	"name": true, "description": true, "cite": true,
}

// Section renders one record as a standalone LaTeX section: an intro
// paragraph from the description field, a description list of all other
// fields, the citation keys, and the radar image.
func Section(rec *catalog.Record, row *catalog.FlatRow) string {
	var lines []string
	lines = append(lines, fmt.Sprintf(`\section{%s}`, Escape(rec.DisplayName())))
	lines = append(lines, `{\footnotesize`)

	if desc := rec.Field("description"); desc != nil && desc.Value != "" {
		lines = append(lines, fmt.Sprintf("\\noindent %s\n", Escape(desc.Value)))
	}

	lines = append(lines, `\begin{description}`+descriptionStyle)

	for _, key := range row.Keys() {
		if sectionSkipFields[key] {
			continue
		}
		value, _ := row.Get(key)
		if strings.Contains(strings.ToLower(key), "url") {
			if s, ok := value.(string); ok && s != "" {
				lines = append(lines, fmt.Sprintf(`  \item[%s:] \href{%s}{%s}`, Escape(key), Escape(s), Escape(s)))
			}
			continue
		}
		if formatted := fieldItem(key, value, 1); strings.TrimSpace(formatted) != "" {
			lines = append(lines, formatted)
		}
	}

	if cites, _ := row.Get("cite"); cites != nil {
		var keys []string
		for _, entry := range citeEntries(cites) {
			keys = append(keys, fmt.Sprintf(`\cite{%s}`, bibtex.Label(entry)))
		}
		if len(keys) > 0 {
			lines = append(lines, fmt.Sprintf(`  \item[Citations:] %s`, strings.Join(keys, ", ")))
			lines = append(lines, `  \item[Ratings:]`)
			lines = append(lines, fmt.Sprintf(`\includegraphics[width=0.2\textwidth]{%s_radar.pdf}`, rec.ID))
		}
	}

	lines = append(lines, `\end{description}`)
	lines = append(lines, "}")
	lines = append(lines, `\clearpage`)
	return strings.Join(lines, "\n")
}

// fieldItem renders a flat value as a description item, recursing into
// verbatim sequences and their mapping elements.
func fieldItem(key string, value any, indent int) string {
	pad := strings.Repeat("  ", indent)
	escKey := Escape(key)
	switch v := value.(type) {
	case map[string]any:
		lines := []string{fmt.Sprintf(`%s\item[%s] \begin{description}%s`, pad, escKey, descriptionStyle)}
		subKeys := make([]string, 0, len(v))
		for subKey := range v {
			subKeys = append(subKeys, subKey)
		}
		slices.Sort(subKeys)
		for _, subKey := range subKeys {
			lines = append(lines, fieldItem(subKey, v[subKey], indent+1))
		}
		lines = append(lines, pad+`\end{description}`)
		return strings.Join(lines, "\n")
	case []any:
		lines := []string{fmt.Sprintf(`%s\item[%s:]`, pad, escKey)}
		for _, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				lines = append(lines, fieldItem("-", item, indent+1))
			default:
				lines = append(lines, fmt.Sprintf("%s  - %s", pad, Escape(item)))
			}
		}
		return strings.Join(lines, "\n")
	case nil:
		return ""
	default:
		return fmt.Sprintf(`%s\item[%s:] %s`, pad, escKey, Escape(v))
	}
}

// SectionFilename returns the per-entry section file name for an id.
func SectionFilename(id string) string {
	return id + ".tex"
}
