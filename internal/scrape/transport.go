// Package scrape implements the collection pipeline: fetching provider
// pricing pages over HTTP and asking a Gemini backend to extract
// structured pricing into the batch shape consumed by the merge engine.
package scrape

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/modelpareto/pareto/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for page fetches.
const DefaultHTTPTimeout = 30 * time.Second

// userAgent identifies the collector to provider sites.
const userAgent = "Mozilla/5.0 (pareto-data-collector)"

// Transport fetches pages for the scrapers.
type Transport struct {
	http *http.Client
}

// NewTransport creates a transport with the default timeout.
func NewTransport() *Transport {
	return &Transport{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Fetch performs a GET and returns the response body as text. Non-2xx
// responses are errors.
func (t *Transport) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WrapIO("fetch", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return "", errors.WrapIO("fetch", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewIOError("fetch", url,
			errors.New("unexpected status "+resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WrapIO("read", url, err)
	}
	return string(body), nil
}
