package latex

import (
	"fmt"
	"strings"
)

// Column describes one table column: its flat-row key, its relative
// width, and its printed label.
type Column struct {
	Key   string
	Width float64
	Label string
}

// AllColumns is the registry of renderable columns, keyed by flat-row
// path. The description entry stays a valid column name even though
// flattening excludes description fields from rows, so selecting it
// yields an empty column.
var AllColumns = map[string]Column{
	"date":        {"date", 1.5, "Date"},
	"expired":     {"expired", 1, "Expired"},
	"valid":       {"valid", 0.7, "Valid"},
	"name":        {"name", 2.5, "Name"},
	"url":         {"url", 0.7, "URL"},
	"domain":      {"domain", 2, "Domain"},
	"focus":       {"focus", 2, "Focus"},
	"keywords":    {"keywords", 2.5, "Keywords"},
	"description": {"description", 4, "Description"},
	"task_types":  {"task_types", 3, "Task Types"},
	"ai_capability_measured": {"ai_capability_measured", 3, "AI Capability"},
	"metrics":                {"metrics", 2, "Metrics"},
	"models":                 {"models", 2, "Models"},
	"notes":                  {"notes", 3, "Notes"},
	"cite":                   {"cite", 1, "Citation"},
	"ratings":                {"ratings", 3, "Ratings"},

	"ratings.specification.rating":      {"ratings.specification.rating", 1, "Specification Rating"},
	"ratings.specification.reason":      {"ratings.specification.reason", 3, "Specification Reason"},
	"ratings.dataset.rating":            {"ratings.dataset.rating", 1, "Dataset Rating"},
	"ratings.dataset.reason":            {"ratings.dataset.reason", 3, "Dataset Reason"},
	"ratings.metrics.rating":            {"ratings.metrics.rating", 1, "Metrics Rating"},
	"ratings.metrics.reason":            {"ratings.metrics.reason", 3, "Metrics Reason"},
	"ratings.reference_solution.rating": {"ratings.reference_solution.rating", 1, "Reference Solution Rating"},
	"ratings.reference_solution.reason": {"ratings.reference_solution.reason", 3, "Reference Solution Reason"},
	"ratings.documentation.rating":      {"ratings.documentation.rating", 1, "Documentation Rating"},
	"ratings.documentation.reason":      {"ratings.documentation.reason", 3, "Documentation Reason"},
}

// DefaultColumns is the column order used when none is configured.
var DefaultColumns = []string{
	"ratings",
	"name",
	"domain",
	"focus",
	"keywords",
	"task_types",
	"ai_capability_measured",
	"metrics",
	"models",
	"cite",
}

// ResolveColumns validates a requested column list against the
// registry. An empty request yields DefaultColumns. When noRatings is
// set, rating columns are removed from the result.
func ResolveColumns(requested []string, noRatings bool) ([]string, error) {
	cols := requested
	if len(cols) == 0 {
		cols = DefaultColumns
	}
	out := make([]string, 0, len(cols))
	for _, key := range cols {
		if _, ok := AllColumns[key]; !ok {
			return nil, fmt.Errorf("invalid column name: %s", key)
		}
		if noRatings && (key == "ratings" || strings.HasPrefix(key, "ratings.")) {
			continue
		}
		out = append(out, key)
	}
	return out, nil
}
