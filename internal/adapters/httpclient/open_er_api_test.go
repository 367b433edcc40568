package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenERAPIClient_Success_InvertsUSDBaseTable(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "result": "success",
            "rates": {"ARS": 1000.0, "EUR": 0.91, "JPY": 150.0}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	part, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/v6/latest/USD", gotPath)
	require.InDelta(t, 0.001, part.ArsToUsd, 1e-9)
	require.InDelta(t, 1/0.91, part.EurToUsd, 1e-9)
}

func TestOpenERAPIClient_NonSuccessResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "error", "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-success result: error")
}

func TestOpenERAPIClient_MissingARSEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "success", "rates": {"EUR": 0.91}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid ARS rate")
}

func TestOpenERAPIClient_ZeroEUREntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "success", "rates": {"ARS": 1000.0, "EUR": 0}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid EUR rate")
}
