package urlcheck

import (
	"context"
	"fmt"

	"github.com/benchkit/benchcat/internal/catalog"
)

// Run checks every extracted URL in traversal order and returns true
// when all of them are reachable. Identical URLs are checked exactly
// once; repeat references reuse the first result. Records without any
// candidate URL are reported as a warning. A failed or timed-out check
// is recorded as invalid and never aborts the batch.
//
// The progress callback, if non-nil, is invoked before each record is
// processed; the CLI uses it to drive its spinner.
func Run(ctx context.Context, checker *Checker, ext *Extraction, rep *catalog.Report, progress func(name string)) bool {
	checked := make(map[string]Result)
	allValid := true

	for _, name := range ext.Names() {
		if progress != nil {
			progress(name)
		}
		urls := ext.URLs(name)
		if len(urls) == 0 {
			rep.Add(&catalog.Issue{
				Entry:   name,
				Message: "no URLs found for entry",
			})
			continue
		}
		for _, u := range urls {
			res, seen := checked[u]
			if !seen {
				res = checker.Check(ctx, u)
				checked[u] = res
			}
			if res.Valid {
				continue
			}
			allValid = false
			if seen {
				// Already reported for the first referencing record.
				continue
			}
			msg := fmt.Sprintf("invalid URL %q: %s", u, res.Explanation)
			if res.StatusCode != 0 {
				msg = fmt.Sprintf("invalid URL %q (status %d): %s", u, res.StatusCode, res.Explanation)
			}
			rep.Add(&catalog.Issue{Entry: name, Message: msg})
		}
	}
	return allValid
}
