// Package latex renders catalog rows into LaTeX artifacts: the
// overview longtable, per-entry section files, the bibliography, the
// radar-chart grid, and the composite document.
package latex

import (
	"fmt"
	"strings"
)

// escapeReplacer rewrites LaTeX special characters. Backslash is left
// alone so values may carry intentional LaTeX markup.
var escapeReplacer = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape makes a value safe for LaTeX text context.
func Escape(v any) string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case nil:
		return ""
	default:
		s = fmt.Sprintf("%v", t)
	}
	return escapeReplacer.Replace(s)
}
