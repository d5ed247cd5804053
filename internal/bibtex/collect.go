package bibtex

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/benchkit/benchcat/internal/catalog"
	"gopkg.in/yaml.v3"
)

// ErrFatalIssues is returned by Collect in strict mode when any entry
// was dropped for a fatal label problem.
var ErrFatalIssues = errors.New("bibliography contains fatal citation errors")

// Bibliography is the validated, ordered set of citation entries that
// survived integrity checking, plus the accepted labels for
// cross-referencing by renderers.
type Bibliography struct {
	Entries []string
	labels  map[string]bool
}

// Body joins the surviving entries with blank lines, forming the
// contents of the .bib file.
func (b *Bibliography) Body() string {
	return strings.Join(b.Entries, "\n\n")
}

// HasLabel reports whether a label was accepted during collection.
func (b *Bibliography) HasLabel(label string) bool {
	return b.labels[label]
}

// Labels returns the accepted labels in sorted order.
func (b *Bibliography) Labels() []string {
	labels := make([]string, 0, len(b.labels))
	for l := range b.labels {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// Collect walks every record's cite field in catalog order and builds
// the bibliography. Per entry:
//
//   - text not starting with "@" is skipped with a warning;
//   - entries failing the per-type field-completeness check are skipped
//     with itemized messages;
//   - an author list containing the literal "others" is reported but
//     the entry is kept;
//   - labels with uppercase letters or whitespace, and labels already
//     seen in this run, are fatal: the entry is dropped.
//
// All problems are reported on rep. In strict mode any fatal problem
// makes Collect return ErrFatalIssues alongside the partial result.
func Collect(c *catalog.Catalog, strict bool, rep *catalog.Report) (*Bibliography, error) {
	bib := &Bibliography{labels: make(map[string]bool)}
	fatal := false

	for _, rec := range c.Records {
		name := rec.DisplayName()
		for _, raw := range CiteStrings(rec, rep) {
			entry := strings.TrimSpace(raw)
			if !strings.HasPrefix(entry, "@") {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("skipping malformed citation entry: %.40q", raw),
					Hint:    "citation entries must start with @",
				})
				continue
			}

			label := Label(entry)
			if errs := validateEntry(entry); len(errs) > 0 {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("invalid BibTeX entry %q", label),
				})
				for _, e := range errs {
					rep.Add(&catalog.Issue{Entry: name, Path: "cite", Message: e})
				}
				continue
			}

			if slices.Contains(authorList(entry), "others") {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("citation %q lists authors as \"others\"", label),
					Hint:    "spell out all author names in full",
				})
			}

			if hasUpper(label) {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("citation label %q is capitalized, labels must be lowercase", label),
				})
				fatal = true
				continue
			}
			if whitespaceRe.MatchString(label) {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("citation label %q contains whitespace", label),
				})
				fatal = true
				continue
			}
			if bib.labels[label] {
				rep.Add(&catalog.Issue{
					Entry:   name,
					Path:    "cite",
					Message: fmt.Sprintf("duplicate citation label %q, all labels must be unique", label),
				})
				fatal = true
				continue
			}

			bib.labels[label] = true
			bib.Entries = append(bib.Entries, entry)
		}
	}

	if strict && fatal {
		return bib, ErrFatalIssues
	}
	return bib, nil
}

// CiteStrings normalizes a record's cite field to a slice of strings.
// A bare string becomes a singleton; sequences contribute their string
// elements; anything else is skipped with an issue.
func CiteStrings(rec *catalog.Record, rep *catalog.Report) []string {
	node := rec.Field("cite")
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return []string{node.Value}
	case yaml.SequenceNode:
		var cites []string
		for _, elem := range node.Content {
			if elem.Kind == yaml.ScalarNode && elem.Tag != "!!null" {
				cites = append(cites, elem.Value)
				continue
			}
			rep.Add(&catalog.Issue{
				Entry:   rec.DisplayName(),
				Path:    "cite",
				Line:    elem.Line,
				Message: "cite list element is not a string, skipped",
			})
		}
		return cites
	default:
		rep.Add(&catalog.Issue{
			Entry:   rec.DisplayName(),
			Path:    "cite",
			Line:    node.Line,
			Message: "cite field must be a string or a list of strings, skipped",
		})
		return nil
	}
}
