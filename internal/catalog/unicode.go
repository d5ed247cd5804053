package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// asciiSuggestions maps common non-ASCII characters to suggested ASCII
// substitutions. Characters outside this table are still reported, just
// without a suggestion.
var asciiSuggestions = map[rune]string{
	'ä': "ae", 'ö': "oe", 'ü': "ue", // German umlauts
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'ç': "c",
	'ñ': "n",
	'á': "a", 'à': "a", 'â': "a", 'ã': "a",
	'í': "i", 'ì': "i", 'î': "i",
	'ó': "o", 'ò': "o", 'ô': "o", 'õ': "o",
	'ú': "u", 'ù': "u", 'û': "u",
	'æ': "ae", 'ø': "oe", 'å': "aa", // Nordic
	'ß': "ss",
	'©': "(c)", '®': "(R)", '™': "(TM)",
	'–': "-", '—': "-", '…': "...",
	'„': `"`, '”': `"`, '“': `"`,
	'’': "'", '‘': "'",
	'П': "P", 'р': "p", 'и': "i", 'в': "v", 'е': "e", 'т': "t", // partial Cyrillic
}

// UnicodeFinding reports one non-ASCII character in scanned text.
type UnicodeFinding struct {
	Line       int    // 1-based line number
	Column     int    // 1-based rune column
	Char       rune   // The offending character
	Suggestion string // Suggested ASCII substitution ("" if unmapped)
	Mapped     bool   // True when the character is in the suggestion table
}

// String renders the finding the way the check command prints it.
func (f UnicodeFinding) String() string {
	if f.Mapped {
		return fmt.Sprintf("line %d:%d: found %q (U+%04X), suggest %q", f.Line, f.Column, f.Char, f.Char, f.Suggestion)
	}
	return fmt.Sprintf("line %d:%d: found %q (U+%04X), no ASCII alternative known", f.Line, f.Column, f.Char, f.Char)
}

// ScanASCII scans text line by line and reports every character outside
// printable ASCII, with a substitution suggestion where one is known.
// The input is not modified; rendering the findings is the caller's
// concern.
func ScanASCII(r io.Reader) ([]UnicodeFinding, error) {
	var findings []UnicodeFinding
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		col := 0
		for _, ch := range scanner.Text() {
			col++
			if ch >= 32 && ch <= 126 {
				continue
			}
			if ch == '\t' {
				continue
			}
			suggestion, mapped := asciiSuggestions[ch]
			findings = append(findings, UnicodeFinding{
				Line:       lineNum,
				Column:     col,
				Char:       ch,
				Suggestion: suggestion,
				Mapped:     mapped,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return findings, err
	}
	return findings, nil
}

// ScanFileASCII runs ScanASCII over a file.
func ScanFileASCII(path string) ([]UnicodeFinding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanASCII(f)
}

var (
	multiSpaceRe  = regexp.MustCompile(` {2,}`)
	nameCharsRe   = regexp.MustCompile(`^[\w\-. ]+$`)
	parenthesesRe = regexp.MustCompile(`[()]`)
)

// CheckNames verifies that every record has a well-formed display name:
// present, printable ASCII, no doubled or leading/trailing spaces, no
// parentheses, no characters outside [A-Za-z0-9_-. ]. Returns false and
// reports each problem when any record fails.
func CheckNames(c *Catalog, rep *Report) bool {
	ok := true
	for i, rec := range c.Records {
		nameNode := rec.Field("name")
		if isNull(nameNode) {
			rep.Add(&Issue{
				Entry:   rec.DisplayName(),
				Path:    "name",
				Line:    rec.Node.Line,
				Message: fmt.Sprintf("entry %d is missing a name field", i+1),
			})
			ok = false
			continue
		}
		if nameNode.Kind != yaml.ScalarNode || nameNode.Tag != "!!str" {
			rep.Add(&Issue{
				Entry:   rec.DisplayName(),
				Path:    "name",
				Line:    nameNode.Line,
				Message: fmt.Sprintf("entry %d has a non-string name: %s", i+1, nameNode.Value),
			})
			ok = false
			continue
		}

		name := nameNode.Value
		for _, ch := range name {
			if ch < 32 || ch > 126 {
				rep.Add(&Issue{
					Entry:   name,
					Path:    "name",
					Line:    nameNode.Line,
					Message: fmt.Sprintf("non-ASCII character %q in name", ch),
				})
				ok = false
			}
		}
		if multiSpaceRe.MatchString(name) {
			rep.Add(&Issue{Entry: name, Path: "name", Line: nameNode.Line,
				Message: "name has multiple consecutive spaces"})
			ok = false
		}
		if strings.TrimSpace(name) != name {
			rep.Add(&Issue{Entry: name, Path: "name", Line: nameNode.Line,
				Message: "name has leading or trailing spaces"})
			ok = false
		}
		if parenthesesRe.MatchString(name) {
			rep.Add(&Issue{Entry: name, Path: "name", Line: nameNode.Line,
				Message: "name contains parentheses"})
			ok = false
		}
		if !nameCharsRe.MatchString(name) {
			rep.Add(&Issue{Entry: name, Path: "name", Line: nameNode.Line,
				Message: "name contains disallowed characters"})
			ok = false
		}
	}
	return ok
}
