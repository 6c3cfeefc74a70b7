// Package exchangerate is the HTTP client for an exchangerate.host style /convert API.
package exchangerate

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
const Source = "exchangerate"

// Client converts one unit of a currency into another.
type Client struct {
	baseURL    string
	apiKey     string
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

// NewClient creates a client for baseURL, e.g. "https://api.exchangerate.host".
// apiKey may be empty; timeout bounds each call.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ providers.ExchangeRateProvider = (*Client)(nil)

// convertResponse is the subset of the /convert payload we read.
// Numbers decode straight into decimals.
type convertResponse struct {
	Success *bool `json:"success"`
	Info    *struct {
		Rate *decimal.Decimal `json:"rate"`
	} `json:"info"`
	Result *decimal.Decimal `json:"result"`
	Error  json.RawMessage  `json:"error"`
}

// Convert returns how many units of to one unit of from buys.
func (c *Client) Convert(ctx context.Context, from, to string) (rate decimal.Decimal, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(Source, err, time.Since(start).Seconds()) }()

	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("amount", "1")
	params.Set("access_key", c.apiKey)

	body, err := c.doGet(ctx, "/convert?"+params.Encode())
	if err != nil {
		return decimal.Zero, apperrors.NewUpstreamError(fmt.Sprintf("failed to retrieve FX rate %s -> %s", from, to), err)
	}

	var resp convertResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return decimal.Zero, apperrors.NewUpstreamError("exchange rate API returned an unreadable body", err)
	}
	if resp.Success != nil && !*resp.Success {
		msg := "exchange rate API reported failure"
		if len(resp.Error) > 0 {
			msg += ": " + string(resp.Error)
		}
		return decimal.Zero, apperrors.NewUpstreamError(msg, nil)
	}

	switch {
	case resp.Info != nil && resp.Info.Rate != nil:
		return *resp.Info.Rate, nil
	case resp.Result != nil:
		return *resp.Result, nil
	}
	return decimal.Zero, apperrors.NewUpstreamError(fmt.Sprintf("FX response missing rate for %s -> %s", from, to), nil)
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
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
