package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"ratesvc/internal/domain"
	"strings"
)

// BluelyticsClient reads the Argentine parallel-market ("blue") quote from
// Bluelytics. The API publishes ARS per USD; the averaged field is inverted
// to the USD-per-ARS convention before returning.
type BluelyticsClient struct {
	http    *http.Client
	baseURL string
}

type bluelyticsResponse struct {
	Blue struct {
		ValueAvg float64 `json:"value_avg"`
	} `json:"blue"`
}

func (c *BluelyticsClient) Name() string { return "bluelytics" }

func (c *BluelyticsClient) Fetch(ctx context.Context) (domain.PartialRate, error) {
	var body bluelyticsResponse
	u := strings.TrimSuffix(c.baseURL, "/") + "/v2/latest"
	if err := getJSON(ctx, c.http, u, &body); err != nil {
		return domain.PartialRate{}, err
	}

	if !positiveFinite(body.Blue.ValueAvg) {
		return domain.PartialRate{}, fmt.Errorf("bluelytics returned invalid blue average: %v", body.Blue.ValueAvg)
	}

	return domain.PartialRate{ArsToUsd: 1 / body.Blue.ValueAvg}, nil
}

func NewBluelyticsClient(httpClient *http.Client, baseURL string) *BluelyticsClient {
	return &BluelyticsClient{http: httpClient, baseURL: baseURL}
}
