// Package service internal/application/service/gold_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/service"
	"github.com/rs/zerolog"
)

// GoldService turns gold price queries into formatted text, with the same
// string-only contract as RateService.
type GoldService struct {
	nbpAPI domain.NBPAPI
	logger zerolog.Logger
}

// NewGoldService creates a new gold price service
func NewGoldService(nbpAPI domain.NBPAPI, log zerolog.Logger) *GoldService {
	return &GoldService{
		nbpAPI: nbpAPI,
		logger: log,
	}
}

// GoldPrice returns the gold price, current when date is empty, otherwise
// as of the given date.
func (s *GoldService) GoldPrice(ctx context.Context, date string) string {
	if msg := validateDate(date); msg != "" {
		return msg
	}

	s.logger.Debug().Str("date", date).Msg("Fetching gold price")

	prices, err := s.nbpAPI.FetchGoldPrices(ctx, date)
	// An empty list is reported the same way as a failed fetch
	if err != nil || len(prices) == 0 {
		if err != nil {
			s.logger.Warn().Err(err).Str("date", date).Msg("Gold price fetch failed")
		}
		if date != "" {
			return fmt.Sprintf("Unable to fetch gold price for %s. The date may be a weekend, holiday, or outside the available data range (data available from 2013-01-02).", date)
		}
		return "Unable to fetch current gold price."
	}

	return formatGoldPrice(prices[0])
}

// GoldPriceHistory returns the gold prices within a date range, in upstream
// order.
func (s *GoldService) GoldPriceHistory(ctx context.Context, startDate, endDate string) string {
	s.logger.Debug().
		Str("start_date", startDate).
		Str("end_date", endDate).
		Msg("Fetching gold price history")

	prices, err := s.nbpAPI.FetchGoldPriceHistory(ctx, startDate, endDate)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Gold price history fetch failed")
		return fmt.Sprintf("Unable to fetch gold price history from %s to %s.", startDate, endDate)
	}

	if len(prices) == 0 {
		return "No gold price data available for the specified date range."
	}

	result := []string{fmt.Sprintf("Gold Price History (%d entries):\n", len(prices))}

	for _, g := range prices {
		result = append(result, formatGoldPrice(g))
	}

	return strings.Join(result, "\n")
}

// GoldPriceLastN returns the last count published gold prices
func (s *GoldService) GoldPriceLastN(ctx context.Context, count int) string {
	if !validCount(count) {
		return invalidCountMsg
	}

	s.logger.Debug().Int("count", count).Msg("Fetching last N gold prices")

	prices, err := s.nbpAPI.FetchGoldPricesLastN(ctx, count)
	if err != nil {
		s.logger.Warn().Err(err).Int("count", count).Msg("Last N gold prices fetch failed")
		return fmt.Sprintf("Unable to fetch last %d gold prices.", count)
	}

	if len(prices) == 0 {
		return "No gold price data available."
	}

	result := []string{fmt.Sprintf("Last %d Gold Prices:\n", len(prices))}

	for _, g := range prices {
		result = append(result, formatGoldPrice(g))
	}

	return strings.Join(result, "\n")
}
