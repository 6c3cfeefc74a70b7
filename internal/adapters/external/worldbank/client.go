// Package worldbank is the HTTP client for the World Bank indicators API (v2).
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/ports/providers"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
)

// Source is the metrics label for this upstream.
const Source = "worldbank"

// Client reads single indicator values for a country and year.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records every call on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for baseURL, e.g. "https://api.worldbank.org".
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ providers.IndicatorProvider = (*Client)(nil)

// The API answers with a two-element array [page metadata, data points],
// or with a one-element array carrying an error message.
type errorEnvelope struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

type dataPoint struct {
	Date  string           `json:"date"`
	Value *decimal.Decimal `json:"value"`
}

// IndicatorValue returns the value for year, or nil when the API has no data point for it.
func (c *Client) IndicatorValue(ctx context.Context, country, indicatorID, year string) (value *decimal.Decimal, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(Source, err, time.Since(start).Seconds()) }()

	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", "1")
	params.Set("date", year+":"+year)
	path := fmt.Sprintf("/v2/country/%s/indicator/%s?%s",
		url.PathEscape(country), url.PathEscape(indicatorID), params.Encode())

	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("failed to retrieve %s for %s", indicatorID, country), err)
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, apperrors.NewUpstreamError("World Bank API returned an unreadable body", err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts) == 1 {
		var env errorEnvelope
		if err := json.Unmarshal(parts[0], &env); err == nil && len(env.Message) > 0 {
			return nil, apperrors.NewUpstreamError("World Bank API error: "+env.Message[0].Value, nil)
		}
		return nil, nil
	}

	var points []dataPoint
	if err := json.Unmarshal(parts[1], &points); err != nil {
		return nil, apperrors.NewUpstreamError("World Bank API returned unexpected data", err)
	}
	if len(points) == 0 || points[0].Value == nil {
		return nil, nil
	}
	return points[0].Value, nil
}

func (c *Client) doGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
