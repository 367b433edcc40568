package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"ratesvc/internal/domain"
	"strings"
)

// FrankfurterClient reads the official ECB EUR/USD quote from Frankfurter.
// The response is already in the USD-per-EUR convention, no inversion needed.
type FrankfurterClient struct {
	http    *http.Client
	baseURL string
}

type frankfurterResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *FrankfurterClient) Name() string { return "frankfurter" }

func (c *FrankfurterClient) Fetch(ctx context.Context) (domain.PartialRate, error) {
	var body frankfurterResponse
	u := strings.TrimSuffix(c.baseURL, "/") + "/latest?from=EUR&to=USD"
	if err := getJSON(ctx, c.http, u, &body); err != nil {
		return domain.PartialRate{}, err
	}

	usd, ok := body.Rates["USD"]
	if !ok {
		return domain.PartialRate{}, fmt.Errorf("frankfurter response is missing the USD rate")
	}
	if !positiveFinite(usd) {
		return domain.PartialRate{}, fmt.Errorf("frankfurter returned invalid EUR/USD rate: %v", usd)
	}

	return domain.PartialRate{EurToUsd: usd}, nil
}

func NewFrankfurterClient(httpClient *http.Client, baseURL string) *FrankfurterClient {
	return &FrankfurterClient{http: httpClient, baseURL: baseURL}
}
