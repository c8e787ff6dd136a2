package service

import (
	"context"

	"github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/entity"
)

// NBPAPI defines the interface for interacting with the NBP API.
// Methods taking a date treat an empty string as "current".
type NBPAPI interface {
	// FetchCurrencyRate retrieves the rate for a currency, current or as of a date
	FetchCurrencyRate(ctx context.Context, table, code, date string) (*entity.RateResponse, error)
	// FetchCurrencyRateHistory retrieves rates for a currency within a date range
	FetchCurrencyRateHistory(ctx context.Context, table, code, startDate, endDate string) (*entity.RateResponse, error)
	// FetchCurrencyRateLastN retrieves the last N published rates for a currency
	FetchCurrencyRateLastN(ctx context.Context, table, code string, count int) (*entity.RateResponse, error)
	// FetchExchangeTables retrieves a full exchange rate table, current or as of a date
	FetchExchangeTables(ctx context.Context, table, date string) ([]entity.ExchangeTable, error)
	// FetchGoldPrices retrieves the gold price, current or as of a date
	FetchGoldPrices(ctx context.Context, date string) ([]entity.GoldPrice, error)
	// FetchGoldPriceHistory retrieves gold prices within a date range
	FetchGoldPriceHistory(ctx context.Context, startDate, endDate string) ([]entity.GoldPrice, error)
	// FetchGoldPricesLastN retrieves the last N published gold prices
	FetchGoldPricesLastN(ctx context.Context, count int) ([]entity.GoldPrice, error)
}
