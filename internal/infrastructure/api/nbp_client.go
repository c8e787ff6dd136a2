// Package api internal/infrastructure/api/nbp_client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/entity"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public NBP Web API base path
	DefaultBaseURL = "https://api.nbp.pl/api"
	// DefaultTimeout bounds every upstream request
	DefaultTimeout = 30 * time.Second

	userAgent = "nbp-mcp-server/1.0"
)

// NBPClient implements the NBP API interface over HTTP
type NBPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewNBPClient creates a new NBP API client
func NewNBPClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *NBPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	return &NBPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

// FetchCurrencyRate retrieves the rate for a currency, current when date is
// empty, otherwise as of the given date
func (c *NBPClient) FetchCurrencyRate(ctx context.Context, table, code, date string) (*entity.RateResponse, error) {
	reqURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/", c.baseURL, table, code)
	if date != "" {
		reqURL = fmt.Sprintf("%s/exchangerates/rates/%s/%s/%s/", c.baseURL, table, code, date)
	}

	var resp entity.RateResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchCurrencyRateHistory retrieves rates for a currency within a date range
func (c *NBPClient) FetchCurrencyRateHistory(ctx context.Context, table, code, startDate, endDate string) (*entity.RateResponse, error) {
	reqURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/%s/%s/", c.baseURL, table, code, startDate, endDate)

	var resp entity.RateResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchCurrencyRateLastN retrieves the last N published rates for a currency
func (c *NBPClient) FetchCurrencyRateLastN(ctx context.Context, table, code string, count int) (*entity.RateResponse, error) {
	reqURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/last/%d/", c.baseURL, table, code, count)

	var resp entity.RateResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchExchangeTables retrieves a full exchange rate table, current when date
// is empty. The API wraps the table in a JSON array.
func (c *NBPClient) FetchExchangeTables(ctx context.Context, table, date string) ([]entity.ExchangeTable, error) {
	reqURL := fmt.Sprintf("%s/exchangerates/tables/%s/", c.baseURL, table)
	if date != "" {
		reqURL = fmt.Sprintf("%s/exchangerates/tables/%s/%s/", c.baseURL, table, date)
	}

	var tables []entity.ExchangeTable
	if err := c.get(ctx, reqURL, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// FetchGoldPrices retrieves the gold price, current when date is empty
func (c *NBPClient) FetchGoldPrices(ctx context.Context, date string) ([]entity.GoldPrice, error) {
	reqURL := fmt.Sprintf("%s/cenyzlota/", c.baseURL)
	if date != "" {
		reqURL = fmt.Sprintf("%s/cenyzlota/%s/", c.baseURL, date)
	}

	var prices []entity.GoldPrice
	if err := c.get(ctx, reqURL, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// FetchGoldPriceHistory retrieves gold prices within a date range
func (c *NBPClient) FetchGoldPriceHistory(ctx context.Context, startDate, endDate string) ([]entity.GoldPrice, error) {
	reqURL := fmt.Sprintf("%s/cenyzlota/%s/%s/", c.baseURL, startDate, endDate)

	var prices []entity.GoldPrice
	if err := c.get(ctx, reqURL, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// FetchGoldPricesLastN retrieves the last N published gold prices
func (c *NBPClient) FetchGoldPricesLastN(ctx context.Context, count int) ([]entity.GoldPrice, error) {
	reqURL := fmt.Sprintf("%s/cenyzlota/last/%d/", c.baseURL, count)

	var prices []entity.GoldPrice
	if err := c.get(ctx, reqURL, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// get performs a single GET request and decodes the JSON response into out.
// One attempt only; callers collapse any failure into an absent result.
func (c *NBPClient) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn().Err(closeErr).Msg("Error closing response body")
		}
	}()

	c.logger.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("NBP API request")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned error status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
