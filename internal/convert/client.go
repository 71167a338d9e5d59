// Package convert implements the HTTP client for the conversion
// service's two endpoints.
package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to the conversion service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL. A zero
// timeout leaves the transport without a deadline; callers are
// expected to bound requests through context instead.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type resultResponse struct {
	Result float64 `json:"result"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Convert issues a standard unit conversion.
func (c *Client) Convert(ctx context.Context, req ConversionRequest) (float64, error) {
	slog.Debug("requesting conversion",
		"category", req.Category,
		"from_unit", req.FromUnit,
		"to_unit", req.ToUnit)

	return c.post(ctx, "/api/convert", req)
}

// ConvertCurrency issues a currency conversion.
func (c *Client) ConvertCurrency(ctx context.Context, req CurrencyRequest) (float64, error) {
	slog.Debug("requesting currency conversion",
		"from_currency", req.FromCurrency,
		"to_currency", req.ToCurrency)

	return c.post(ctx, "/api/currency", req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (float64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach conversion service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The service reports failures as {detail}; a missing or
		// unreadable body still counts as a service-side failure.
		var detail detailResponse
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		return 0, &ServiceError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}

	var result resultResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Result, nil
}
