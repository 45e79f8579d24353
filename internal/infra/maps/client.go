// Package maps resolves travel durations between two postcodes via a
// Google-style distance-matrix endpoint.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"travel-cost-service/internal/pkg/config"
)

const statusOK = "OK"

type matrixResponse struct {
	Status       string      `json:"status"`
	Rows         []matrixRow `json:"rows"`
	ErrorMessage string      `json:"error_message"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status   string       `json:"status"`
	Duration *metricValue `json:"duration"`
	Distance *metricValue `json:"distance"`
}

type metricValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.MapsConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// TravelTime returns the driving duration in seconds between two postcodes.
// One synchronous request per call; no retries and no caching of repeated
// pairs. Callers are expected to pass validated postcodes.
func (c *Client) TravelTime(ctx context.Context, origin, destination string) (int, error) {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("mode", "driving")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, NewError(KindTransport, "create distance matrix request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, NewError(KindTransport, "distance matrix request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, NewError(KindHTTPStatus,
			fmt.Sprintf("distance matrix returned HTTP %d: %s", resp.StatusCode, string(body)), nil)
	}

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return 0, NewError(KindTransport, "decode distance matrix response", err)
	}

	if mr.Status != statusOK {
		msg := fmt.Sprintf("distance matrix error: %s", mr.Status)
		if mr.ErrorMessage != "" {
			msg += ": " + mr.ErrorMessage
		}
		return 0, NewError(KindProviderStatus, msg, nil)
	}

	if len(mr.Rows) == 0 || len(mr.Rows[0].Elements) == 0 {
		return 0, NewError(KindNoRoute, "no route found between postcodes", nil)
	}

	element := mr.Rows[0].Elements[0]
	if element.Status != statusOK {
		return 0, NewError(KindRouteStatus,
			fmt.Sprintf("route lookup failed: %s", element.Status), nil)
	}

	if element.Duration == nil || element.Duration.Value < 0 {
		return 0, NewError(KindRouteStatus, "route element is missing a duration", nil)
	}

	return element.Duration.Value, nil
}
