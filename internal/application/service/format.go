// Package service internal/application/service/format.go
package service

import (
	"fmt"
	"strings"

	"github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/entity"
)

// orUnknown substitutes "Unknown" for fields the upstream response omitted
func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

// rateValueLines renders the numeric fields present on a rate, each suffixed
// " PLN". Absent fields produce no line at all.
func rateValueLines(r entity.Rate) []string {
	var lines []string
	if r.Mid != "" {
		lines = append(lines, fmt.Sprintf("Mid Rate: %s PLN", r.Mid))
	}
	if r.Bid != "" {
		lines = append(lines, fmt.Sprintf("Bid Rate: %s PLN", r.Bid))
	}
	if r.Ask != "" {
		lines = append(lines, fmt.Sprintf("Ask Rate: %s PLN", r.Ask))
	}
	return lines
}

// formatTableRate formats one currency entry embedded in an exchange table
func formatTableRate(r entity.Rate) string {
	parts := []string{
		"Currency: " + orUnknown(r.Currency),
		"Code: " + orUnknown(r.Code),
	}

	if r.Country != "" {
		parts = append(parts, "Country: "+r.Country)
	}
	if r.Symbol != "" {
		parts = append(parts, "Symbol: "+r.Symbol)
	}

	parts = append(parts, rateValueLines(r)...)

	return strings.Join(parts, "\n")
}

// formatExchangeTable formats an exchange rate table into a readable string
func formatExchangeTable(t entity.ExchangeTable) string {
	result := []string{
		"Table: " + orUnknown(t.Table),
		"Number: " + orUnknown(t.No),
	}

	if t.TradingDate != "" {
		result = append(result, "Trading Date: "+t.TradingDate)
	}

	result = append(result, "Effective Date: "+orUnknown(t.EffectiveDate))
	result = append(result, "\nRates:")

	for _, r := range t.Rates {
		result = append(result, "\n"+formatTableRate(r))
	}

	return strings.Join(result, "\n")
}

// formatHistoryEntry renders one rate as a single pipe-joined line, used by
// the history and last-N listings
func formatHistoryEntry(r entity.Rate) string {
	entry := []string{"Date: " + orUnknown(r.EffectiveDate)}

	if r.TradingDate != "" {
		entry = append(entry, "Trading Date: "+r.TradingDate)
	}
	if r.Mid != "" {
		entry = append(entry, fmt.Sprintf("Mid Rate: %s PLN", r.Mid))
	}
	if r.Bid != "" {
		entry = append(entry, fmt.Sprintf("Bid Rate: %s PLN", r.Bid))
	}
	if r.Ask != "" {
		entry = append(entry, fmt.Sprintf("Ask Rate: %s PLN", r.Ask))
	}

	return strings.Join(entry, " | ")
}

// formatGoldPrice formats gold price data into a readable string
func formatGoldPrice(g entity.GoldPrice) string {
	return fmt.Sprintf("Date: %s\nPrice: %s PLN/g", orUnknown(g.Date), orUnknown(string(g.Price)))
}
