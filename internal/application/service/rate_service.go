// Package service internal/application/service/rate_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/service"
	"github.com/rs/zerolog"
)

// RateService turns currency rate queries into formatted text. Every
// outcome, including validation and upstream failures, is returned as a
// string; the tool layer never sees an error.
type RateService struct {
	nbpAPI domain.NBPAPI
	logger zerolog.Logger
}

// NewRateService creates a new rate service
func NewRateService(nbpAPI domain.NBPAPI, log zerolog.Logger) *RateService {
	return &RateService{
		nbpAPI: nbpAPI,
		logger: log,
	}
}

// CurrencyRate returns the exchange rate for a currency, current when date
// is empty, otherwise as of the given date.
func (s *RateService) CurrencyRate(ctx context.Context, code, date, table string) string {
	code = strings.ToUpper(code)
	table = strings.ToLower(table)

	if !validTableType(table) {
		return invalidTableMsg
	}
	if msg := validateDate(date); msg != "" {
		return msg
	}

	s.logger.Debug().
		Str("code", code).
		Str("date", date).
		Str("table", table).
		Msg("Fetching currency rate")

	data, err := s.nbpAPI.FetchCurrencyRate(ctx, table, code, date)
	if err != nil || data == nil {
		if err != nil {
			s.logger.Warn().Err(err).Str("code", code).Str("table", table).Msg("Currency rate fetch failed")
		}
		if date != "" {
			return fmt.Sprintf("Unable to fetch exchange rate for %s on %s. The date may be a weekend, holiday, or outside the available data range.", code, date)
		}
		return fmt.Sprintf("Unable to fetch current exchange rate for %s from table %s.", code, strings.ToUpper(table))
	}

	if len(data.Rates) == 0 {
		return fmt.Sprintf("No exchange rate data available for %s.", code)
	}

	rate := data.Rates[0]
	result := []string{
		"Currency: " + orUnknown(data.Currency),
		"Code: " + orUnknown(data.Code),
		"Table: " + strings.ToUpper(orUnknown(data.Table)),
		"Number: " + orUnknown(rate.No),
		"Effective Date: " + orUnknown(rate.EffectiveDate),
	}

	if rate.TradingDate != "" {
		result = append(result, "Trading Date: "+rate.TradingDate)
	}

	result = append(result, rateValueLines(rate)...)

	return strings.Join(result, "\n")
}

// ExchangeTable returns a full exchange rate table, current when date is
// empty, otherwise as of the given date.
func (s *RateService) ExchangeTable(ctx context.Context, date, table string) string {
	table = strings.ToLower(table)

	if !validTableType(table) {
		return invalidTableMsg
	}
	if msg := validateDate(date); msg != "" {
		return msg
	}

	s.logger.Debug().
		Str("date", date).
		Str("table", table).
		Msg("Fetching exchange table")

	tables, err := s.nbpAPI.FetchExchangeTables(ctx, table, date)
	// The API wraps the table in a list, usually with one element; an empty
	// list is reported the same way as a failed fetch
	if err != nil || len(tables) == 0 {
		if err != nil {
			s.logger.Warn().Err(err).Str("table", table).Msg("Exchange table fetch failed")
		}
		if date != "" {
			return fmt.Sprintf("Unable to fetch exchange rate table %s for %s. The date may be a weekend, holiday, or outside the available data range.", strings.ToUpper(table), date)
		}
		return fmt.Sprintf("Unable to fetch current exchange rate table %s.", strings.ToUpper(table))
	}

	return formatExchangeTable(tables[0])
}

// CurrencyRateHistory returns the rates for a currency within a date range,
// one pipe-joined line per quotation, in upstream order.
func (s *RateService) CurrencyRateHistory(ctx context.Context, code, startDate, endDate, table string) string {
	code = strings.ToUpper(code)
	table = strings.ToLower(table)

	if !validTableType(table) {
		return invalidTableMsg
	}

	s.logger.Debug().
		Str("code", code).
		Str("start_date", startDate).
		Str("end_date", endDate).
		Str("table", table).
		Msg("Fetching currency rate history")

	data, err := s.nbpAPI.FetchCurrencyRateHistory(ctx, table, code, startDate, endDate)
	if err != nil || data == nil {
		if err != nil {
			s.logger.Warn().Err(err).Str("code", code).Str("table", table).Msg("Currency rate history fetch failed")
		}
		return fmt.Sprintf("Unable to fetch historical data for %s from %s to %s.", code, startDate, endDate)
	}

	if len(data.Rates) == 0 {
		return fmt.Sprintf("No historical data available for %s in the specified date range.", code)
	}

	result := []string{
		"Currency: " + orUnknown(data.Currency),
		"Code: " + orUnknown(data.Code),
		"Table: " + strings.ToUpper(orUnknown(data.Table)),
		fmt.Sprintf("\nHistorical Rates (%d entries):\n", len(data.Rates)),
	}

	for _, r := range data.Rates {
		result = append(result, formatHistoryEntry(r))
	}

	return strings.Join(result, "\n")
}

// CurrencyRateLastN returns the last count published rates for a currency
func (s *RateService) CurrencyRateLastN(ctx context.Context, code string, count int, table string) string {
	code = strings.ToUpper(code)
	table = strings.ToLower(table)

	if !validTableType(table) {
		return invalidTableMsg
	}
	if !validCount(count) {
		return invalidCountMsg
	}

	s.logger.Debug().
		Str("code", code).
		Int("count", count).
		Str("table", table).
		Msg("Fetching last N currency rates")

	data, err := s.nbpAPI.FetchCurrencyRateLastN(ctx, table, code, count)
	if err != nil || data == nil {
		if err != nil {
			s.logger.Warn().Err(err).Str("code", code).Int("count", count).Msg("Last N rates fetch failed")
		}
		return fmt.Sprintf("Unable to fetch last %d rates for %s.", count, code)
	}

	if len(data.Rates) == 0 {
		return fmt.Sprintf("No rate data available for %s.", code)
	}

	result := []string{
		"Currency: " + orUnknown(data.Currency),
		"Code: " + orUnknown(data.Code),
		"Table: " + strings.ToUpper(orUnknown(data.Table)),
		fmt.Sprintf("\nLast %d Rates:\n", len(data.Rates)),
	}

	for _, r := range data.Rates {
		result = append(result, formatHistoryEntry(r))
	}

	return strings.Join(result, "\n")
}
