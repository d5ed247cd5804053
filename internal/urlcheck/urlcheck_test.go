// Package urlcheck tests URL harvesting and reachability checks.
// Related: internal/urlcheck/urlcheck.go, internal/urlcheck/run.go
// Tags: urlcheck, http, extraction, dedup
package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benchkit/benchcat/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds a FlatRow from ordered key/value pairs.
func row(pairs ...any) *catalog.FlatRow {
	r := catalog.NewFlatRow()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rows     []*catalog.FlatRow
		wantName string
		wantURLs []string
	}{
		"url suffixed keys are harvested": {
			rows: []*catalog.FlatRow{row(
				"name", "Foo",
				"homepageurl", "https://example.com",
				"paper.url", "https://example.org/paper",
				"license", "MIT",
			)},
			wantName: "Foo",
			wantURLs: []string{"https://example.com", "https://example.org/paper"},
		},
		"suffix match is case insensitive": {
			rows: []*catalog.FlatRow{row(
				"name", "Foo",
				"repoURL", "https://example.com/repo",
			)},
			wantName: "Foo",
			wantURLs: []string{"https://example.com/repo"},
		},
		"empty and non-string url values are skipped": {
			rows: []*catalog.FlatRow{row(
				"name", "Foo",
				"homepageurl", "",
				"otherurl", 42,
			)},
			wantName: "Foo",
			wantURLs: nil,
		},
		"citation urls are harvested from a string cite": {
			rows: []*catalog.FlatRow{row(
				"name", "Foo",
				"cite", "@misc{k, url = {https://example.com/cited}}",
			)},
			wantName: "Foo",
			wantURLs: []string{"https://example.com/cited"},
		},
		"citation urls are harvested from a cite list": {
			rows: []*catalog.FlatRow{row(
				"name", "Foo",
				"cite", []any{
					`@misc{a, url = {https://one.example}}`,
					`@misc{b, url = "https://two.example"}`,
				},
			)},
			wantName: "Foo",
			wantURLs: []string{"https://one.example", "https://two.example"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ext := Extract(tc.rows)
			require.Equal(t, []string{tc.wantName}, ext.Names())
			assert.Equal(t, tc.wantURLs, ext.URLs(tc.wantName))
		})
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	checker := NewChecker(5 * time.Second)
	ctx := context.Background()

	t.Run("reachable url is valid", func(t *testing.T) {
		res := checker.Check(ctx, srv.URL+"/ok")
		assert.True(t, res.Valid)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("404 is explained", func(t *testing.T) {
		res := checker.Check(ctx, srv.URL+"/missing")
		assert.False(t, res.Valid)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, res.Explanation, "Not Found")
	})

	t.Run("empty url is rejected without a request", func(t *testing.T) {
		res := checker.Check(ctx, "")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Explanation, "empty")
	})

	t.Run("missing scheme is rejected", func(t *testing.T) {
		res := checker.Check(ctx, "example.com/page")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Explanation, "missing scheme")
	})

	t.Run("non-http scheme is rejected", func(t *testing.T) {
		res := checker.Check(ctx, "ftp://example.com/file")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Explanation, `invalid URL scheme "ftp"`)
	})

	t.Run("unreachable host fails without aborting", func(t *testing.T) {
		unreachable := NewChecker(500 * time.Millisecond)
		res := unreachable.Check(ctx, "http://127.0.0.1:1/nothing")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Explanation, "request failed")
	})
}

func TestExplainStatus(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ExplainStatus(429), "rate limited")
	assert.Contains(t, ExplainStatus(418), "not a standard HTTP error")
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("each unique url is fetched once", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		shared := srv.URL + "/shared"
		rows := []*catalog.FlatRow{
			row("name", "Foo", "homepageurl", shared),
			row("name", "Bar", "homepageurl", shared, "paperurl", srv.URL+"/other"),
		}
		rep := &catalog.Report{}

		ok := Run(context.Background(), NewChecker(5*time.Second), Extract(rows), rep, nil)

		assert.True(t, ok)
		assert.False(t, rep.HasIssues())
		assert.Equal(t, int64(2), hits.Load(), "shared URL must be checked once")
	})

	t.Run("invalid url is reported once with status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		dead := srv.URL + "/gone"
		rows := []*catalog.FlatRow{
			row("name", "Foo", "homepageurl", dead),
			row("name", "Bar", "homepageurl", dead),
		}
		rep := &catalog.Report{}

		ok := Run(context.Background(), NewChecker(5*time.Second), Extract(rows), rep, nil)

		assert.False(t, ok)
		require.Len(t, rep.Issues, 1)
		assert.Contains(t, rep.Issues[0].Message, "status 404")
	})

	t.Run("record without urls gets a warning", func(t *testing.T) {
		t.Parallel()

		rows := []*catalog.FlatRow{row("name", "Foo", "license", "MIT")}
		rep := &catalog.Report{}

		ok := Run(context.Background(), NewChecker(time.Second), Extract(rows), rep, nil)

		assert.True(t, ok, "missing URLs warn but do not fail the batch")
		require.Len(t, rep.Issues, 1)
		assert.Contains(t, rep.Issues[0].Message, "no URLs found")
	})

	t.Run("progress callback sees every record", func(t *testing.T) {
		t.Parallel()

		rows := []*catalog.FlatRow{
			row("name", "Foo"),
			row("name", "Bar"),
		}
		rep := &catalog.Report{}

		var seen []string
		Run(context.Background(), NewChecker(time.Second), Extract(rows), rep, func(name string) {
			seen = append(seen, name)
		})
		assert.Equal(t, []string{"Foo", "Bar"}, seen)
	})
}
