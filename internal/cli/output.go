package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnTint = color.New(color.FgYellow)
)

// printOK writes a success line.
func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", okMark, fmt.Sprintf(format, args...))
}

// printFail writes a failure line.
func printFail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", failMark, fmt.Sprintf(format, args...))
}

// printReport renders every accumulated diagnostic, one line each.
// Verbose mode prints the full multi-line form with paths and hints.
func printReport(w io.Writer, rep *catalog.Report, verbose bool) {
	for _, issue := range rep.Issues {
		if verbose {
			warnTint.Fprint(w, issue.FormatFull())
			continue
		}
		warnTint.Fprintf(w, "  %s\n", issue.Error())
	}
}

// isTerminal reports whether stdout is attached to a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newSpinner returns a started spinner when progress display is
// enabled and stdout is a TTY, else nil. Callers must Stop a non-nil
// spinner.
func newSpinner(enabled bool, suffix string) *spinner.Spinner {
	if !enabled || !isTerminal() {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()
	return s
}
