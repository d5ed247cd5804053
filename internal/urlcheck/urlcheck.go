// Package urlcheck harvests URLs from flattened catalog rows and
// citation strings and checks them for reachability. Each unique URL is
// checked at most once per run regardless of how many records
// reference it.
package urlcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/benchkit/benchcat/internal/catalog"
)

// DefaultTimeout is the reachability timeout used when none is
// configured.
const DefaultTimeout = 10 * time.Second

// citeURLRe matches url = {...} and url = "..." inside citation text.
var citeURLRe = regexp.MustCompile(`url\s*=\s*[{"]([^}"]+)[}"]`)

// httpExplanations describes common HTTP error status codes.
var httpExplanations = map[int]string{
	400: "Bad Request - the server couldn't understand the request due to invalid syntax",
	401: "Unauthorized - authentication is required and has failed or was not provided",
	403: "Forbidden - the server understood the request but refuses to authorize it",
	404: "Not Found - the requested resource could not be found on the server",
	405: "Method Not Allowed - the request method is not supported by the target resource",
	408: "Request Timeout - the server timed out waiting for the request",
	429: "Too Many Requests - rate limited by the server",
	500: "Internal Server Error - the server encountered an unexpected condition",
	502: "Bad Gateway - the server received an invalid response from the upstream server",
	503: "Service Unavailable - the server is not ready to handle the request",
	504: "Gateway Timeout - the upstream server did not respond in time",
}

// ExplainStatus returns a human-readable explanation for an HTTP error
// status code.
func ExplainStatus(code int) string {
	if expl, ok := httpExplanations[code]; ok {
		return expl
	}
	return "unknown error code - not a standard HTTP error"
}

// Result is the outcome of checking one URL.
type Result struct {
	URL         string
	Valid       bool
	Explanation string
	StatusCode  int // 0 when no HTTP status was obtained
}

// Checker performs blocking reachability checks with a fixed timeout.
type Checker struct {
	client *http.Client
}

// NewChecker returns a checker whose requests time out after the given
// duration.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{client: &http.Client{Timeout: timeout}}
}

// Check performs a GET against the URL and reports whether it answered
// with a success status. Malformed URLs are rejected without a network
// round trip.
func (c *Checker) Check(ctx context.Context, rawURL string) Result {
	if rawURL == "" {
		return Result{URL: rawURL, Explanation: "URL is empty"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Result{URL: rawURL, Explanation: fmt.Sprintf("invalid URL format: %v", err)}
	}
	switch parsed.Scheme {
	case "http", "https":
	case "":
		return Result{URL: rawURL, Explanation: "missing scheme, did you mean to include http:// or https://?"}
	default:
		return Result{URL: rawURL, Explanation: fmt.Sprintf("invalid URL scheme %q, only HTTP and HTTPS are supported", parsed.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{URL: rawURL, Explanation: fmt.Sprintf("invalid request: %v", err)}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{URL: rawURL, Explanation: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{
			URL:         rawURL,
			Explanation: ExplainStatus(resp.StatusCode),
			StatusCode:  resp.StatusCode,
		}
	}
	return Result{URL: rawURL, Valid: true, Explanation: "valid URL", StatusCode: resp.StatusCode}
}

// Extraction groups candidate URLs by owning record display name, in
// catalog traversal order.
type Extraction struct {
	names  []string
	byName map[string][]string
}

// Names returns the record names in traversal order.
func (e *Extraction) Names() []string {
	return e.names
}

// URLs returns the candidate URLs for a record name.
func (e *Extraction) URLs(name string) []string {
	return e.byName[name]
}

// Extract harvests candidate URLs from flattened rows: every flat field
// whose key ends in "url" (case-insensitive) with a non-empty string
// value, plus url fields embedded in citation strings under the cite
// key.
func Extract(rows []*catalog.FlatRow) *Extraction {
	ext := &Extraction{byName: make(map[string][]string)}
	for _, row := range rows {
		name := row.String("name")
		if _, seen := ext.byName[name]; !seen {
			ext.names = append(ext.names, name)
			ext.byName[name] = nil
		}
		for _, key := range row.Keys() {
			val, _ := row.Get(key)
			if hasURLSuffix(key) {
				if s, ok := val.(string); ok && s != "" {
					ext.byName[name] = append(ext.byName[name], s)
				}
				continue
			}
			if key != "cite" {
				continue
			}
			switch v := val.(type) {
			case string:
				ext.byName[name] = append(ext.byName[name], citeURLs(v)...)
			case []any:
				for _, elem := range v {
					if s, ok := elem.(string); ok {
						ext.byName[name] = append(ext.byName[name], citeURLs(s)...)
					}
				}
			}
		}
	}
	return ext
}

func hasURLSuffix(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "url")
}

func citeURLs(entry string) []string {
	var urls []string
	for _, m := range citeURLRe.FindAllStringSubmatch(entry, -1) {
		urls = append(urls, m[1])
	}
	return urls
}
