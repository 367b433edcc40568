package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"ratesvc/internal/domain"
	"strings"
)

// OpenERAPIClient reads a USD-base rate table from open.er-api.com and
// extracts the ARS and EUR entries. The table is in units-per-USD, so both
// values are inverted.
type OpenERAPIClient struct {
	http    *http.Client
	baseURL string
}

type openERAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *OpenERAPIClient) Name() string { return "open-er-api" }

func (c *OpenERAPIClient) Fetch(ctx context.Context) (domain.PartialRate, error) {
	var body openERAPIResponse
	u := strings.TrimSuffix(c.baseURL, "/") + "/v6/latest/USD"
	if err := getJSON(ctx, c.http, u, &body); err != nil {
		return domain.PartialRate{}, err
	}

	if body.Result != "success" {
		return domain.PartialRate{}, fmt.Errorf("open.er-api returned non-success result: %s", body.Result)
	}

	return usdTableToPartial("open.er-api", body.Rates)
}

// usdTableToPartial converts a units-per-USD rate table into the
// USD-per-unit convention for the ARS and EUR entries.
func usdTableToPartial(source string, rates map[string]float64) (domain.PartialRate, error) {
	ars, ok := rates["ARS"]
	if !ok || !positiveFinite(ars) {
		return domain.PartialRate{}, fmt.Errorf("%s returned invalid ARS rate: %v", source, ars)
	}
	eur, ok := rates["EUR"]
	if !ok || !positiveFinite(eur) {
		return domain.PartialRate{}, fmt.Errorf("%s returned invalid EUR rate: %v", source, eur)
	}
	return domain.PartialRate{ArsToUsd: 1 / ars, EurToUsd: 1 / eur}, nil
}

func NewOpenERAPIClient(httpClient *http.Client, baseURL string) *OpenERAPIClient {
	return &OpenERAPIClient{http: httpClient, baseURL: baseURL}
}
