package latex

import (
	"fmt"
	"strings"

	"github.com/benchkit/benchcat/internal/catalog"
)

// RadarFilename returns the radar chart image name for an entry id.
// Chart images are produced by an external renderer; the LaTeX output
// only references them.
func RadarFilename(id, format string) string {
	return fmt.Sprintf("images/%s_radar.%s", id, format)
}

// RadarGrid renders a figure-per-page grid of radar chart images,
// cols x rowsPerPage charts per page.
func RadarGrid(rows []*catalog.FlatRow, cols, rowsPerPage int, format string) string {
	if cols < 1 {
		cols = 1
	}
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}
	perPage := cols * rowsPerPage

	paths := make([]string, 0, len(rows))
	for _, row := range rows {
		id := row.String("id")
		if id == "" {
			id = "unknown"
		}
		paths = append(paths, RadarFilename(id, format))
	}

	width := 1.0/float64(cols) - 0.01
	var pages []string
	for start := 0; start < len(paths); start += perPage {
		end := min(start+perPage, len(paths))

		var sb strings.Builder
		sb.WriteString("\\begin{figure}[ht!]\n\\centering\n")
		for j, path := range paths[start:end] {
			sb.WriteString(fmt.Sprintf("\\includegraphics[width=%.4f\\textwidth]{%s}\n", width, path))
			if (j+1)%cols == 0 {
				sb.WriteString("\\\\[1ex]\n")
			}
		}
		sb.WriteString(fmt.Sprintf("\\caption{Radar chart overview (page %d)}\n", start/perPage+1))
		sb.WriteString("\\end{figure}\n")
		pages = append(pages, sb.String())
	}
	return strings.Join(pages, "\n\\clearpage\n")
}

// RatingValues extracts the numeric rating per rating category from a
// flat row (keys of the form "ratings.<category>.rating"). Values that
// do not parse as numbers become 0. The external chart renderer
// consumes this.
func RatingValues(row *catalog.FlatRow) map[string]float64 {
	ratings := make(map[string]float64)
	for _, key := range row.Keys() {
		if !strings.HasPrefix(key, "ratings.") || !strings.HasSuffix(key, ".rating") {
			continue
		}
		parts := strings.Split(key, ".")
		if len(parts) != 3 {
			continue
		}
		val, _ := row.Get(key)
		switch v := val.(type) {
		case int:
			ratings[parts[1]] = float64(v)
		case float64:
			ratings[parts[1]] = v
		default:
			ratings[parts[1]] = 0
		}
	}
	return ratings
}
