// Package bibtex extracts and validates the BibTeX citation entries
// embedded in catalog records. Entries are treated as opaque strings
// with an extractable type and label; field checks are presence checks
// against a static per-type requirement table.
package bibtex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// UnknownLabel is reported when no label can be extracted from an entry.
const UnknownLabel = "<unknown>"

var (
	labelRe  = regexp.MustCompile(`^@\w+\{([^,]+),`)
	typeRe   = regexp.MustCompile(`^@(\w+)\s*\{`)
	urlRe    = regexp.MustCompile(`url\s*=\s*[{"]([^}"]+)[}"]`)
	authorRe = regexp.MustCompile(`(?s)author\s*=\s*\{(.+?)\}`)
)

// requiredFieldsByType lists the mandatory fields per entry type.
// "book" additionally accepts editor in place of author (see
// validateEntry). Unknown types have no requirements.
var requiredFieldsByType = map[string][]string{
	"article":       {"author", "title", "journal", "year", "doi"},
	"book":          {"author", "title", "publisher", "year", "doi"},
	"booklet":       {"title"},
	"conference":    {"author", "title", "booktitle", "year"},
	"inbook":        {"author", "title", "chapter", "publisher", "year"},
	"incollection":  {"author", "title", "booktitle", "publisher", "year"},
	"inproceedings": {"author", "title", "booktitle", "year"},
	"manual":        {"title"},
	"mastersthesis": {"author", "title", "school", "year"},
	"misc":          {"title", "url", "year"},
	"phdthesis":     {"author", "title", "school", "year"},
	"proceedings":   {"title", "year"},
	"techreport":    {"author", "title", "institution", "year"},
	"unpublished":   {"author", "title", "note"},
}

// Label extracts the citation label from an entry string: the token
// between the opening brace and the first comma. Returns UnknownLabel
// when the entry does not match the expected shape.
func Label(entry string) string {
	if m := labelRe.FindStringSubmatch(strings.TrimSpace(entry)); m != nil {
		return m[1]
	}
	return UnknownLabel
}

// EntryType extracts the lowercased entry type (the word after "@"),
// or "" when the entry is malformed.
func EntryType(entry string) string {
	if m := typeRe.FindStringSubmatch(strings.TrimSpace(entry)); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

// ExtractURL returns the url field value from an entry string, or "".
func ExtractURL(entry string) string {
	if m := urlRe.FindStringSubmatch(entry); m != nil {
		return m[1]
	}
	return ""
}

// RequiredFields returns the mandatory fields for an entry type.
func RequiredFields(entryType string) []string {
	return requiredFieldsByType[entryType]
}

// hasField reports whether the entry text assigns the named field.
func hasField(entry, field string) bool {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(field) + `\s*=`)
	return re.MatchString(entry)
}

// validateEntry checks field completeness against the per-type
// requirement table. book entries may carry editor instead of author.
// Returns an itemized message per missing field.
func validateEntry(entry string) []string {
	entryType := EntryType(entry)
	label := Label(entry)
	required := requiredFieldsByType[entryType]

	var errs []string
	if entryType == "book" {
		if !hasField(entry, "author") && !hasField(entry, "editor") {
			errs = append(errs, fmt.Sprintf("entry %q (book) missing author or editor", label))
		}
		trimmed := make([]string, 0, len(required))
		for _, f := range required {
			if f != "author" {
				trimmed = append(trimmed, f)
			}
		}
		required = trimmed
	}
	for _, field := range required {
		if !hasField(entry, field) {
			errs = append(errs, fmt.Sprintf("entry %q (%s) missing required field: %s", label, entryType, field))
		}
	}
	return errs
}

// authorList returns the individual author names from an entry's
// author field, split on " and ". Empty when no author field exists.
func authorList(entry string) []string {
	m := authorRe.FindStringSubmatch(entry)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], " and ")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		authors = append(authors, strings.TrimSpace(p))
	}
	return authors
}

// hasUpper reports whether the text contains an uppercase letter.
func hasUpper(text string) bool {
	return strings.ContainsFunc(text, unicode.IsUpper)
}

var whitespaceRe = regexp.MustCompile(`\s`)
