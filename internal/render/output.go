// Package render holds output helpers shared by the LaTeX and Markdown
// renderers.
package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes rendered content, creating parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
