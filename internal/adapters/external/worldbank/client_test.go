package worldbank_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bond_catalog/internal/adapters/external/worldbank"
	"github.com/SscSPs/bond_catalog/internal/apperrors"
)

func newClient(t *testing.T, status int, body string, onRequest func(*http.Request)) *worldbank.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if onRequest != nil {
			onRequest(r)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return worldbank.NewClient(srv.URL, time.Second)
}

const gdpBody = `[
  {"page":1,"pages":1,"per_page":1,"total":1,"sourceid":"2","lastupdated":"2024-01-01"},
  [{"indicator":{"id":"NY.GDP.MKTP.CD","value":"GDP (current US$)"},"country":{"id":"NG","value":"Nigeria"},
    "countryiso3code":"NGA","date":"2022","value":477386121350.55,"unit":"","obs_status":"","decimal":0}]
]`

func TestIndicatorValue_ReadsFirstDataPoint(t *testing.T) {
	var got *http.Request
	c := newClient(t, http.StatusOK, gdpBody, func(r *http.Request) { got = r })

	v, err := c.IndicatorValue(context.Background(), "NG", "NY.GDP.MKTP.CD", "2022")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.RequireFromString("477386121350.55")), v.String())

	require.NotNil(t, got)
	assert.Equal(t, "/v2/country/NG/indicator/NY.GDP.MKTP.CD", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "1", q.Get("per_page"))
	assert.Equal(t, "2022:2022", q.Get("date"))
}

func TestIndicatorValue_NoData(t *testing.T) {
	cases := map[string]string{
		"null value":      `[{"page":1},[{"date":"2022","value":null}]]`,
		"empty data":      `[{"page":1},[]]`,
		"null data":       `[{"page":0},null]`,
		"metadata only":   `[{"page":0,"total":0}]`,
		"empty top level": `[]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newClient(t, http.StatusOK, body, nil)
			v, err := c.IndicatorValue(context.Background(), "NG", "FP.CPI.TOTL.ZG", "2022")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestIndicatorValue_UpstreamFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"error envelope", http.StatusOK, `[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`},
		{"not json", http.StatusOK, `<error/>`},
		{"object instead of array", http.StatusOK, `{"value":1}`},
		{"server error", http.StatusServiceUnavailable, `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, tc.status, tc.body, nil)
			_, err := c.IndicatorValue(context.Background(), "XX", "NY.GDP.MKTP.CD", "2022")
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
		})
	}
}
