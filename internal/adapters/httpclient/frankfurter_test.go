package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrankfurterClient_Success(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"amount": 1.0, "base": "EUR", "rates": {"USD": 1.1}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewFrankfurterClient(srv.Client(), srv.URL)

	part, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "from=EUR&to=USD", gotQuery)
	require.InDelta(t, 1.1, part.EurToUsd, 1e-9)
	require.Zero(t, part.ArsToUsd)
}

func TestFrankfurterClient_MissingUSDRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base": "EUR", "rates": {"GBP": 0.86}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewFrankfurterClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing the USD rate")
}

func TestFrankfurterClient_InvalidRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base": "EUR", "rates": {"USD": -1.1}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewFrankfurterClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid EUR/USD rate")
}

func TestFrankfurterClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewFrankfurterClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 502")
}
