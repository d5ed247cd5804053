package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"files":             []string{"source/benchmarks.yaml"},
		"format":            "tex",
		"out_dir":           "./content",
		"columns":           []string{},
		"author_truncation": 9999,
		"url_timeout":       10,
		"strict":            false,
		"standalone":        false,
		"with_citation":     false,
		"no_ratings":        false,
		"required":          false,
		"show_progress":     true,
	}
}
