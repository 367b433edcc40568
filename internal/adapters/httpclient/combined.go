package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"ratesvc/internal/domain"
	"strings"
)

// CombinedClient is the first fallback: the same Bluelytics parallel-market
// quote for ARS plus an official EUR-base quote from exchangerate.host. It
// only succeeds when both legs succeed.
type CombinedClient struct {
	blue   *BluelyticsClient
	http   *http.Client
	eurURL string
}

type exchangerateHostResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

func (c *CombinedClient) Name() string { return "bluelytics+exchangerate.host" }

func (c *CombinedClient) Fetch(ctx context.Context) (domain.PartialRate, error) {
	ars, err := c.blue.Fetch(ctx)
	if err != nil {
		return domain.PartialRate{}, fmt.Errorf("ARS leg failed: %w", err)
	}

	var body exchangerateHostResponse
	u := strings.TrimSuffix(c.eurURL, "/") + "/latest?base=EUR&symbols=USD"
	if err = getJSON(ctx, c.http, u, &body); err != nil {
		return domain.PartialRate{}, fmt.Errorf("EUR leg failed: %w", err)
	}
	if !body.Success {
		return domain.PartialRate{}, fmt.Errorf("exchangerate.host returned non-success result")
	}

	usd, ok := body.Rates["USD"]
	if !ok {
		return domain.PartialRate{}, fmt.Errorf("exchangerate.host response is missing the USD rate")
	}
	if !positiveFinite(usd) {
		return domain.PartialRate{}, fmt.Errorf("exchangerate.host returned invalid EUR/USD rate: %v", usd)
	}

	return domain.PartialRate{ArsToUsd: ars.ArsToUsd, EurToUsd: usd}, nil
}

func NewCombinedClient(blue *BluelyticsClient, httpClient *http.Client, eurBaseURL string) *CombinedClient {
	return &CombinedClient{blue: blue, http: httpClient, eurURL: eurBaseURL}
}
