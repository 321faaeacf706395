// Package linkcheck finds http(s) links in a post and verifies they respond.
package linkcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var urlRe = regexp.MustCompile(`https?://[^\s)\]"'<>]+`)

// ExtractURLs returns the deduplicated http(s) URLs found in text, in
// first-seen order. Trailing sentence punctuation is stripped so prose like
// "see https://example.com." checks the URL, not the period.
func ExtractURLs(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, u := range urlRe.FindAllString(text, -1) {
		u = strings.TrimRight(u, ".,;:!?")
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// FilterDomain keeps only the URLs whose host matches domain
// (case-insensitive). An empty domain keeps everything; unparseable URLs
// are dropped since they cannot belong to the domain.
func FilterDomain(urls []string, domain string) []string {
	if domain == "" {
		return urls
	}
	var out []string
	for _, u := range urls {
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		if strings.EqualFold(parsed.Hostname(), domain) {
			out = append(out, u)
		}
	}
	return out
}

// Result is the outcome of checking one URL.
type Result struct {
	URL    string
	Status int
	Err    error
}

// Broken reports whether the link failed: transport error or a 4xx/5xx
// response.
func (r Result) Broken() bool {
	return r.Err != nil || r.Status >= 400
}

// Checker issues HEAD requests with bounded concurrency.
type Checker struct {
	Client      *http.Client
	UserAgent   string
	Concurrency int
}

// NewChecker builds a Checker with the given per-request timeout.
func NewChecker(timeout time.Duration, userAgent string, concurrency int) *Checker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Checker{
		Client:      &http.Client{Timeout: timeout},
		UserAgent:   userAgent,
		Concurrency: concurrency,
	}
}

// Check issues a HEAD request for every URL and returns one Result per URL,
// in input order. Individual failures land in their Result; Check itself
// only fails if ctx is cancelled.
func (c *Checker) Check(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = c.checkOne(gCtx, u)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (c *Checker) checkOne(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("linkcheck: build request: %w", err)}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return Result{URL: url, Err: err}
	}
	defer resp.Body.Close()
	return Result{URL: url, Status: resp.StatusCode}
}
