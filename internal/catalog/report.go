package catalog

import (
	"fmt"
	"strings"
)

// Issue represents a single diagnostic with location and context.
type Issue struct {
	Entry   string // Display name of the owning record ("<top level>" if none)
	Path    string // Dot-path field location (e.g., "ratings.specification.rating")
	Line    int    // 1-based line number in source file
	Column  int    // 1-based column number in source file
	Message string // Human-readable description
	Hint    string // Suggestion for fixing the issue
}

// Error implements the error interface.
func (i *Issue) Error() string {
	var sb strings.Builder
	if i.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d", i.Line))
		if i.Column > 0 {
			sb.WriteString(fmt.Sprintf(":%d", i.Column))
		}
		sb.WriteString(": ")
	}
	if i.Entry != "" {
		sb.WriteString(fmt.Sprintf("entry %q: ", i.Entry))
	}
	if i.Path != "" {
		sb.WriteString(fmt.Sprintf("%s: ", i.Path))
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// FormatFull returns a detailed multi-line rendering of the issue.
func (i *Issue) FormatFull() string {
	var sb strings.Builder
	if i.Line > 0 {
		sb.WriteString(fmt.Sprintf("  Line %d", i.Line))
		if i.Column > 0 {
			sb.WriteString(fmt.Sprintf(", Column %d", i.Column))
		}
		sb.WriteString("\n")
	}
	if i.Entry != "" {
		sb.WriteString(fmt.Sprintf("  Entry: %s\n", i.Entry))
	}
	if i.Path != "" {
		sb.WriteString(fmt.Sprintf("  Path: %s\n", i.Path))
	}
	sb.WriteString(fmt.Sprintf("  Error: %s\n", i.Message))
	if i.Hint != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", i.Hint))
	}
	return sb.String()
}

// Report accumulates diagnostics across a processing pass. Validators
// record every problem they find instead of stopping at the first, so
// one run surfaces all issues in a catalog.
type Report struct {
	Issues []*Issue
}

// Add appends an issue to the report.
func (r *Report) Add(issue *Issue) {
	r.Issues = append(r.Issues, issue)
}

// Addf appends an issue built from an entry name and format string.
func (r *Report) Addf(entry, format string, args ...any) {
	r.Add(&Issue{Entry: entry, Message: fmt.Sprintf(format, args...)})
}

// HasIssues returns true if any diagnostics were recorded.
func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// Messages returns the ordered human-readable diagnostic strings.
func (r *Report) Messages() []string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msgs = append(msgs, issue.Error())
	}
	return msgs
}
