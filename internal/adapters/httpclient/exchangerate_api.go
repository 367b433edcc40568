package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"ratesvc/internal/domain"
	"strings"
)

// ExchangerateAPIClient reads the keyless v4 USD-base table from
// exchangerate-api.com. Last source in the cascade.
type ExchangerateAPIClient struct {
	http    *http.Client
	baseURL string
}

type exchangerateAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangerateAPIClient) Name() string { return "exchangerate-api" }

func (c *ExchangerateAPIClient) Fetch(ctx context.Context) (domain.PartialRate, error) {
	var body exchangerateAPIResponse
	u := strings.TrimSuffix(c.baseURL, "/") + "/v4/latest/USD"
	if err := getJSON(ctx, c.http, u, &body); err != nil {
		return domain.PartialRate{}, err
	}

	if body.Base != "" && body.Base != "USD" {
		return domain.PartialRate{}, fmt.Errorf("exchangerate-api returned unexpected base: %s", body.Base)
	}

	return usdTableToPartial("exchangerate-api", body.Rates)
}

func NewExchangerateAPIClient(httpClient *http.Client, baseURL string) *ExchangerateAPIClient {
	return &ExchangerateAPIClient{http: httpClient, baseURL: baseURL}
}
