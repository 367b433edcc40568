package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

// getJSON performs a GET request and decodes the JSON body into out. Non-2xx
// statuses and decode problems are returned as errors, never panics.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %q: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d for %q: %s", resp.StatusCode, rawURL, resp.Status)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %q: %w", rawURL, err)
	}
	return nil
}

// positiveFinite reports whether v is usable as a rate. NaN compares false
// against everything, so the > 0 check covers it.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
