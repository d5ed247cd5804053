package latex

import (
	"fmt"
	"strings"

	"github.com/benchkit/benchcat/internal/bibtex"
	"github.com/benchkit/benchcat/internal/catalog"
)

const tableFont = `\footnotesize`

// emptyURLValues are url cell values treated as "no URL".
var emptyURLValues = map[string]bool{
	"": true, "None": true, "none": true, "unknown": true, "Unknown": true,
}

// urlRef renders the row's url field as an arrow hyperlink, or "".
func urlRef(row *catalog.FlatRow) string {
	url := row.String("url")
	if emptyURLValues[url] {
		return ""
	}
	return fmt.Sprintf(`\href{%s}{$\Rightarrow$}`, Escape(url))
}

// tableRow renders one flat row into a longtable row.
func tableRow(row *catalog.FlatRow, columns []string) string {
	cells := make([]string, 0, len(columns))
	urlTxt := urlRef(row)

	for _, col := range columns {
		var content string
		value, present := row.Get(col)

		switch {
		case col == "ratings":
			id := row.String("id")
			if id == "" {
				id = "unknown"
			}
			content = fmt.Sprintf(`\includegraphics[width=0.15\textwidth]{%s_radar.pdf}`, id)
		case col == "cite":
			var keys []string
			for _, entry := range citeEntries(value) {
				if strings.HasPrefix(strings.TrimSpace(entry), "@") {
					keys = append(keys, bibtex.Label(entry))
				}
			}
			if len(keys) > 0 {
				content = fmt.Sprintf(`\cite{%s}`, strings.Join(keys, ","))
			}
			content += urlTxt
		case col == "url":
			content = urlTxt
		case !present || value == nil:
			content = ""
		default:
			if list, ok := value.([]any); ok {
				items := make([]string, 0, len(list))
				for _, item := range list {
					items = append(items, Escape(item))
				}
				content = strings.Join(items, ", ")
			} else {
				content = Escape(value)
			}
		}
		cells = append(cells, content)
	}
	return strings.Join(cells, " & ") + ` \\ \hline`
}

// citeEntries normalizes a flat cite value to its entry strings.
func citeEntries(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// columnFormat builds the longtable column spec with widths normalized
// to sum to \textwidth, and the bold header row.
func columnFormat(columns []string) (widths string, header string) {
	total := 0.0
	for _, key := range columns {
		total += AllColumns[key].Width
	}

	specs := make([]string, 0, len(columns))
	names := make([]string, 0, len(columns))
	for _, key := range columns {
		col := AllColumns[key]
		specs = append(specs, fmt.Sprintf(`p{%.2f\textwidth}`, col.Width/total))
		names = append(names, fmt.Sprintf(`\textbf{%s}`, Escape(col.Label)))
	}
	return "{|" + strings.Join(specs, "|") + "|}", strings.Join(names, " & ")
}

// Table renders the catalog overview as a landscape longtable.
func Table(rows []*catalog.FlatRow, columns []string) string {
	widths, header := columnFormat(columns)

	var body []string
	for _, row := range rows {
		r := tableRow(row, columns)
		if strings.TrimSpace(r) != `\\ \hline` {
			body = append(body, r)
		}
	}

	var sb strings.Builder
	sb.WriteString("\\begin{landscape}\n")
	sb.WriteString("{" + tableFont + "\n")
	sb.WriteString(`\begin{longtable}` + widths + "\n")
	sb.WriteString("\\hline\n")
	sb.WriteString(header + " \\\\ \\hline\n")
	sb.WriteString("\\endfirsthead\n")
	sb.WriteString("\\hline\n")
	sb.WriteString(header + " \\\\ \\hline\n")
	sb.WriteString("\\endhead\n")
	sb.WriteString("\\hline\n")
	sb.WriteString(fmt.Sprintf("\\multicolumn{%d}{r}{Continued on next page} \\\\\n", len(columns)))
	sb.WriteString("\\endfoot\n")
	sb.WriteString("\\hline\n")
	sb.WriteString("\\endlastfoot\n")
	sb.WriteString(strings.Join(body, "\n"))
	sb.WriteString("\n\\end{longtable}\n")
	sb.WriteString("}\n")
	sb.WriteString("\\end{landscape}\n")
	return sb.String()
}
