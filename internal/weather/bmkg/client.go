// Package bmkg implements the upstream client for the BMKG public feeds.
// Every call is a single bounded-timeout attempt with a fixed header set;
// there are no retries and no circuit breaker, so a failed call falls
// through immediately to the caller's fallback policy.
package bmkg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errUnexpectedStatus = errors.New("unexpected status code")

// feedHeaders are required by the upstream to avoid request blocking.
var feedHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9,id;q=0.8",
	"Referer":         "https://cuaca.bmkg.go.id/",
	"Origin":          "https://cuaca.bmkg.go.id",
}

// Client fetches raw payloads from the BMKG endpoints.
type Client struct {
	http *http.Client

	forecastURL string
	quakeURL    string
	feltURL     string
	nowcastURL  string
}

// NewClient creates a Client over the shared outbound HTTP client. The
// caller configures the timeout on httpClient (≤10s).
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		http:        httpClient,
		forecastURL: "https://api.bmkg.go.id/publik/prakiraan-cuaca",
		quakeURL:    "https://data.bmkg.go.id/DataMKG/TEWS/autogempa.json",
		feltURL:     "https://data.bmkg.go.id/DataMKG/TEWS/gempadirasakan.json",
		nowcastURL:  "https://www.bmkg.go.id/alerts/nowcast/id/rss.xml",
	}
}

// Forecast fetches the weather forecast for an adm4 area code.
func (c *Client) Forecast(ctx context.Context, admCode string) (map[string]any, error) {
	return c.getJSON(ctx, fmt.Sprintf("%s?adm4=%s", c.forecastURL, admCode))
}

// LatestQuake fetches the most recent earthquake payload.
func (c *Client) LatestQuake(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, c.quakeURL)
}

// FeltQuakes fetches the recent felt-earthquakes payload.
func (c *Client) FeltQuakes(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, c.feltURL)
}

// Nowcast fetches the early-warning RSS feed as raw bytes.
func (c *Client) Nowcast(ctx context.Context) ([]byte, error) {
	resp, err := c.get(ctx, c.nowcastURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *Client) getJSON(ctx context.Context, url string) (map[string]any, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// get issues a single attempt. Timeout, transport error, or non-200 status
// all surface as an error; the caller decides the fallback.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range feedHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}
	return resp, nil
}
