// Package catalog tests the ASCII hygiene scan and name checks.
// Related: internal/catalog/unicode.go
// Tags: catalog, unicode, ascii, name
package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanASCII(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want []UnicodeFinding
	}{
		"clean ascii": {
			in:   "name: Foo\nlicense: MIT\n",
			want: nil,
		},
		"tabs are allowed": {
			in:   "a\tb\n",
			want: nil,
		},
		"mapped character gets a suggestion": {
			in: "über\n",
			want: []UnicodeFinding{
				{Line: 1, Column: 1, Char: 'ü', Suggestion: "ue", Mapped: true},
			},
		},
		"unmapped character is still reported": {
			in: "a b\n",
			want: []UnicodeFinding{
				{Line: 1, Column: 2, Char: ' '},
			},
		},
		"line and column are tracked": {
			in: "ok\nsmart ’ quote\n",
			want: []UnicodeFinding{
				{Line: 2, Column: 7, Char: '’', Suggestion: "'", Mapped: true},
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ScanASCII(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnicodeFinding_String(t *testing.T) {
	t.Parallel()

	mapped := UnicodeFinding{Line: 3, Column: 8, Char: 'ß', Suggestion: "ss", Mapped: true}
	assert.Contains(t, mapped.String(), `suggest "ss"`)
	assert.Contains(t, mapped.String(), "line 3:8")

	unmapped := UnicodeFinding{Line: 1, Column: 1, Char: ' '}
	assert.Contains(t, unmapped.String(), "no ASCII alternative known")
}

func TestCheckNames(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src      string
		wantOK   bool
		wantMsgs []string
	}{
		"well formed names": {
			src: `
- name: Foo Bar
- name: baz-2.0
`,
			wantOK: true,
		},
		"missing name": {
			src: `
- license: MIT
`,
			wantOK:   false,
			wantMsgs: []string{"entry 1 is missing a name field"},
		},
		"non-string name": {
			src: `
- name: 42
`,
			wantOK:   false,
			wantMsgs: []string{"entry 1 has a non-string name"},
		},
		"non-ascii character": {
			src: `
- name: Fünf
`,
			wantOK:   false,
			wantMsgs: []string{"non-ASCII character"},
		},
		"doubled spaces": {
			src: `
- name: "Foo  Bar"
`,
			wantOK:   false,
			wantMsgs: []string{"multiple consecutive spaces"},
		},
		"trailing space": {
			src: `
- name: "Foo "
`,
			wantOK:   false,
			wantMsgs: []string{"leading or trailing spaces"},
		},
		"parentheses": {
			src: `
- name: "Foo (beta)"
`,
			wantOK:   false,
			wantMsgs: []string{"name contains parentheses"},
		},
		"disallowed characters": {
			src: `
- name: "Foo/Bar"
`,
			wantOK:   false,
			wantMsgs: []string{"name contains disallowed characters"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := mustCatalog(t, tc.src)
			rep := &Report{}

			assert.Equal(t, tc.wantOK, CheckNames(c, rep))
			for _, want := range tc.wantMsgs {
				found := false
				for _, msg := range rep.Messages() {
					if strings.Contains(msg, want) {
						found = true
					}
				}
				assert.True(t, found, "missing diagnostic %q in %v", want, rep.Messages())
			}
		})
	}
}
