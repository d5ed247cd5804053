// Package markdown renders catalog rows into Markdown artifacts: the
// overview table and per-entry detail pages.
package markdown

import (
	"fmt"
	"strings"

	"github.com/benchkit/benchcat/internal/bibtex"
	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/benchkit/benchcat/internal/render/latex"
)

// cellReplacer keeps cell content on one table line.
var cellReplacer = strings.NewReplacer("|", `\|`, "\n", " ")

// escapeCell makes a value safe inside a Markdown table cell.
func escapeCell(v any) string {
	if v == nil {
		return ""
	}
	return cellReplacer.Replace(fmt.Sprintf("%v", v))
}

// cellValue renders a flat value for a table cell; lists are
// comma-joined, citations reduced to their labels.
func cellValue(key string, value any) string {
	if key == "cite" {
		var labels []string
		for _, entry := range citeEntries(value) {
			if strings.HasPrefix(strings.TrimSpace(entry), "@") {
				labels = append(labels, bibtex.Label(entry))
			}
		}
		return strings.Join(labels, ", ")
	}
	if list, ok := value.([]any); ok {
		items := make([]string, 0, len(list))
		for _, item := range list {
			items = append(items, escapeCell(item))
		}
		return strings.Join(items, ", ")
	}
	return escapeCell(value)
}

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

// Table renders the overview table with one row per record.
func Table(rows []*catalog.FlatRow, columns []string) string {
	headers := make([]string, 0, len(columns))
	for _, key := range columns {
		if col, ok := latex.AllColumns[key]; ok {
			headers = append(headers, col.Label)
		} else {
			headers = append(headers, key)
		}
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(columns)) + "\n")
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, key := range columns {
			value, _ := row.Get(key)
			cells = append(cells, cellValue(key, value))
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String()
}

// Entry renders one record as a standalone Markdown page. When
// withCitation is set the raw citation entries are appended in a code
// block, with author lists truncated to authorTruncation names.
func Entry(rec *catalog.Record, row *catalog.FlatRow, withCitation bool, authorTruncation int) string {
	var sb strings.Builder
	sb.WriteString("# " + rec.DisplayName() + "\n\n")

	if desc := rec.Field("description"); desc != nil && desc.Value != "" {
		sb.WriteString(desc.Value + "\n\n")
	}

	for _, key := range row.Keys() {
		if key == "name" || key == "cite" {
			continue
		}
		value, _ := row.Get(key)
		if value == nil {
			continue
		}
		if strings.HasSuffix(strings.ToLower(key), "url") {
			if s, ok := value.(string); ok && s != "" {
				sb.WriteString(fmt.Sprintf("- **%s**: <%s>\n", key, s))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", key, cellValue(key, value)))
	}

	if !withCitation {
		return sb.String()
	}
	cites, _ := row.Get("cite")
	entries := citeEntries(cites)
	if len(entries) == 0 {
		return sb.String()
	}
	sb.WriteString("\n## Citation\n\n")
	for _, entry := range entries {
		sb.WriteString("```bibtex\n")
		sb.WriteString(TruncateAuthors(entry, authorTruncation))
		sb.WriteString("\n```\n")
	}
	return sb.String()
}

// TruncateAuthors shortens an entry's author list to at most n names,
// appending "et al." when names were dropped.
func TruncateAuthors(entry string, n int) string {
	if n < 1 {
		return entry
	}
	start := strings.Index(entry, "author")
	if start < 0 {
		return entry
	}
	open := strings.Index(entry[start:], "{")
	if open < 0 {
		return entry
	}
	open += start
	end := strings.Index(entry[open:], "}")
	if end < 0 {
		return entry
	}
	end += open

	authors := strings.Split(entry[open+1:end], " and ")
	if len(authors) <= n {
		return entry
	}
	truncated := strings.Join(authors[:n], " and ") + " and et al."
	return entry[:open+1] + truncated + entry[end:]
}
