package entity

import (
	"encoding/json"
)

// RateResponse represents the NBP single-currency rate container returned by
// the /exchangerates/rates/ endpoints. The Rates slice holds one entry for a
// current or dated lookup and multiple entries for range and last-N lookups,
// in upstream publication order.
type RateResponse struct {
	Table    string `json:"table"`
	Currency string `json:"currency"`
	Code     string `json:"code"`
	Rates    []Rate `json:"rates"`
}

// Rate represents a single quoted rate. The NBP API populates a different
// subset of fields depending on the endpoint: rate lookups carry the
// publication number and dates, table entries carry the currency name and
// code instead. Tables A and B quote a mid rate, table C quotes bid/ask.
// Absent optional fields stay as empty strings.
//
// Rate values are kept as json.Number so the upstream numeric text is
// reproduced exactly, without any float re-rendering.
type Rate struct {
	No            string      `json:"no,omitempty"`
	EffectiveDate string      `json:"effectiveDate,omitempty"`
	TradingDate   string      `json:"tradingDate,omitempty"`
	Currency      string      `json:"currency,omitempty"`
	Code          string      `json:"code,omitempty"`
	Country       string      `json:"country,omitempty"`
	Symbol        string      `json:"symbol,omitempty"`
	Mid           json.Number `json:"mid,omitempty"`
	Bid           json.Number `json:"bid,omitempty"`
	Ask           json.Number `json:"ask,omitempty"`
}

// ExchangeTable represents one published exchange rate table from the
// /exchangerates/tables/ endpoints. The API wraps tables in a JSON array,
// usually containing a single element.
type ExchangeTable struct {
	Table         string `json:"table"`
	No            string `json:"no"`
	TradingDate   string `json:"tradingDate,omitempty"`
	EffectiveDate string `json:"effectiveDate"`
	Rates         []Rate `json:"rates"`
}
