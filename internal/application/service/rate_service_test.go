// internal/application/service/rate_service_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/entity"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRateService(mockAPI *mocks.MockNBPAPI) *RateService {
	return NewRateService(mockAPI, zerolog.Nop())
}

func usdRateResponse() *entity.RateResponse {
	return &entity.RateResponse{
		Table:    "A",
		Currency: "dolar amerykański",
		Code:     "USD",
		Rates: []entity.Rate{
			{No: "012/A/NBP/2024", EffectiveDate: "2024-01-17", Mid: json.Number("3.9876")},
		},
	}
}

func TestCurrencyRateInvalidTable(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	svc := newRateService(mockAPI)

	for _, table := range []string{"d", "D", "x", "ab", ""} {
		result := svc.CurrencyRate(context.Background(), "USD", "", table)
		assert.Equal(t, "Invalid table type. Use 'a', 'b', or 'c'.", result)
	}

	// Validation failures must not reach the network
	mockAPI.AssertNotCalled(t, "FetchCurrencyRate")
}

func TestCurrencyRateTableCaseInsensitive(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "").Return(usdRateResponse(), nil)
	svc := newRateService(mockAPI)

	assert.Equal(t,
		svc.CurrencyRate(context.Background(), "USD", "", "a"),
		svc.CurrencyRate(context.Background(), "USD", "", "A"))
}

func TestCurrencyRateInvalidDate(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	svc := newRateService(mockAPI)

	for _, date := range []string{"01-15-2024", "2024/01/15", "15.01.2024", "2024-1-5", "yesterday"} {
		result := svc.CurrencyRate(context.Background(), "USD", date, "a")
		assert.Equal(t, "Invalid date format: '"+date+"'. Expected YYYY-MM-DD (e.g., 2024-01-15)", result)
	}

	mockAPI.AssertNotCalled(t, "FetchCurrencyRate")
}

func TestCurrencyRateCodeCaseInsensitive(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "").Return(usdRateResponse(), nil)
	svc := newRateService(mockAPI)

	lower := svc.CurrencyRate(context.Background(), "usd", "", "a")
	upper := svc.CurrencyRate(context.Background(), "USD", "", "a")
	mixed := svc.CurrencyRate(context.Background(), "UsD", "", "a")

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, mixed)
}

func TestCurrencyRateMidOnly(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "").Return(usdRateResponse(), nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRate(context.Background(), "USD", "", "a")

	expected := strings.Join([]string{
		"Currency: dolar amerykański",
		"Code: USD",
		"Table: A",
		"Number: 012/A/NBP/2024",
		"Effective Date: 2024-01-17",
		"Mid Rate: 3.9876 PLN",
	}, "\n")
	assert.Equal(t, expected, result)
	assert.NotContains(t, result, "Bid Rate:")
	assert.NotContains(t, result, "Ask Rate:")
}

func TestCurrencyRateBidAsk(t *testing.T) {
	resp := &entity.RateResponse{
		Table:    "C",
		Currency: "euro",
		Code:     "EUR",
		Rates: []entity.Rate{
			{
				No:            "010/C/NBP/2024",
				TradingDate:   "2024-01-12",
				EffectiveDate: "2024-01-15",
				Bid:           json.Number("4.2801"),
				Ask:           json.Number("4.3665"),
			},
		},
	}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "c", "EUR", "").Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRate(context.Background(), "EUR", "", "c")

	assert.Contains(t, result, "Trading Date: 2024-01-12")
	assert.Contains(t, result, "Bid Rate: 4.2801 PLN")
	assert.Contains(t, result, "Ask Rate: 4.3665 PLN")
	assert.NotContains(t, result, "Mid Rate:")
}

func TestCurrencyRateFetchFailed(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "").Return(nil, errors.New("connection refused"))
	svc := newRateService(mockAPI)

	result := svc.CurrencyRate(context.Background(), "USD", "", "a")

	assert.Equal(t, "Unable to fetch current exchange rate for USD from table A.", result)
}

func TestCurrencyRateFetchFailedForDate(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "2024-01-13").Return(nil, errors.New("status 404"))
	svc := newRateService(mockAPI)

	result := svc.CurrencyRate(context.Background(), "USD", "2024-01-13", "a")

	assert.Equal(t, "Unable to fetch exchange rate for USD on 2024-01-13. The date may be a weekend, holiday, or outside the available data range.", result)
}

func TestCurrencyRateEmptyRates(t *testing.T) {
	resp := &entity.RateResponse{Table: "A", Currency: "dolar amerykański", Code: "USD"}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRate", mock.Anything, "a", "USD", "").Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRate(context.Background(), "USD", "", "a")

	// Distinct from the unable-to-fetch message
	assert.Equal(t, "No exchange rate data available for USD.", result)
}

func TestExchangeTableTwoRates(t *testing.T) {
	tables := []entity.ExchangeTable{
		{
			Table:         "A",
			No:            "012/A/NBP/2024",
			EffectiveDate: "2024-01-17",
			Rates: []entity.Rate{
				{Currency: "euro", Code: "EUR", Mid: json.Number("4.3215")},
				{Currency: "dolar amerykański", Code: "USD", Mid: json.Number("3.9876")},
			},
		},
	}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchExchangeTables", mock.Anything, "a", "").Return(tables, nil)
	svc := newRateService(mockAPI)

	result := svc.ExchangeTable(context.Background(), "", "a")

	assert.Contains(t, result, "Table: A")
	assert.Contains(t, result, "Number: 012/A/NBP/2024")
	assert.Contains(t, result, "Effective Date: 2024-01-17")
	assert.Equal(t, 2, strings.Count(result, "Currency: "))
	assert.Equal(t, 2, strings.Count(result, "Mid Rate: "))

	// Upstream order is preserved
	assert.Less(t, strings.Index(result, "Code: EUR"), strings.Index(result, "Code: USD"))
}

func TestExchangeTableFetchFailed(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchExchangeTables", mock.Anything, "b", "").Return(nil, errors.New("timeout"))
	svc := newRateService(mockAPI)

	result := svc.ExchangeTable(context.Background(), "", "b")

	assert.Equal(t, "Unable to fetch current exchange rate table B.", result)
}

func TestExchangeTableEmptyList(t *testing.T) {
	// An empty table list reads the same as a failed fetch
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchExchangeTables", mock.Anything, "a", "2024-01-13").Return([]entity.ExchangeTable{}, nil)
	svc := newRateService(mockAPI)

	result := svc.ExchangeTable(context.Background(), "2024-01-13", "a")

	assert.Equal(t, "Unable to fetch exchange rate table A for 2024-01-13. The date may be a weekend, holiday, or outside the available data range.", result)
}

func TestExchangeTableInvalidDate(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	svc := newRateService(mockAPI)

	result := svc.ExchangeTable(context.Background(), "2024/01/15", "a")

	assert.Equal(t, "Invalid date format: '2024/01/15'. Expected YYYY-MM-DD (e.g., 2024-01-15)", result)
	mockAPI.AssertNotCalled(t, "FetchExchangeTables")
}

func TestCurrencyRateHistory(t *testing.T) {
	resp := &entity.RateResponse{
		Table:    "A",
		Currency: "euro",
		Code:     "EUR",
		Rates: []entity.Rate{
			{No: "001/A/NBP/2024", EffectiveDate: "2024-01-02", Mid: json.Number("4.3434")},
			{No: "002/A/NBP/2024", EffectiveDate: "2024-01-03", Mid: json.Number("4.3555")},
		},
	}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateHistory", mock.Anything, "a", "EUR", "2024-01-01", "2024-01-31").Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateHistory(context.Background(), "eur", "2024-01-01", "2024-01-31", "a")

	assert.Contains(t, result, "Historical Rates (2 entries):")
	assert.Contains(t, result, "Date: 2024-01-02 | Mid Rate: 4.3434 PLN")
	assert.Contains(t, result, "Date: 2024-01-03 | Mid Rate: 4.3555 PLN")
	assert.Less(t, strings.Index(result, "2024-01-02"), strings.Index(result, "2024-01-03"))
}

func TestCurrencyRateHistoryFetchFailed(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateHistory", mock.Anything, "a", "EUR", "2024-01-01", "2024-01-31").Return(nil, errors.New("network unreachable"))
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateHistory(context.Background(), "EUR", "2024-01-01", "2024-01-31", "a")

	// The range is echoed even when the failure had nothing to do with it
	assert.Equal(t, "Unable to fetch historical data for EUR from 2024-01-01 to 2024-01-31.", result)
}

func TestCurrencyRateHistoryEmpty(t *testing.T) {
	resp := &entity.RateResponse{Table: "A", Currency: "euro", Code: "EUR"}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateHistory", mock.Anything, "a", "EUR", "2024-01-06", "2024-01-07").Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateHistory(context.Background(), "EUR", "2024-01-06", "2024-01-07", "a")

	assert.Equal(t, "No historical data available for EUR in the specified date range.", result)
}

func TestCurrencyRateLastNInvalidCount(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	svc := newRateService(mockAPI)

	for _, count := range []int{0, 256, -5} {
		result := svc.CurrencyRateLastN(context.Background(), "USD", count, "a")
		assert.Equal(t, "Count must be between 1 and 255.", result)
	}

	mockAPI.AssertNotCalled(t, "FetchCurrencyRateLastN")
}

func TestCurrencyRateLastN(t *testing.T) {
	resp := &entity.RateResponse{
		Table:    "C",
		Currency: "euro",
		Code:     "EUR",
		Rates: []entity.Rate{
			{
				No:            "010/C/NBP/2024",
				TradingDate:   "2024-01-12",
				EffectiveDate: "2024-01-15",
				Bid:           json.Number("4.2801"),
				Ask:           json.Number("4.3665"),
			},
		},
	}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateLastN", mock.Anything, "c", "EUR", 1).Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateLastN(context.Background(), "EUR", 1, "c")

	assert.Contains(t, result, "Last 1 Rates:")
	assert.Contains(t, result, "Date: 2024-01-15 | Trading Date: 2024-01-12 | Bid Rate: 4.2801 PLN | Ask Rate: 4.3665 PLN")
}

func TestCurrencyRateLastNFetchFailed(t *testing.T) {
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateLastN", mock.Anything, "a", "USD", 10).Return(nil, errors.New("timeout"))
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateLastN(context.Background(), "USD", 10, "a")

	assert.Equal(t, "Unable to fetch last 10 rates for USD.", result)
}

func TestCurrencyRateLastNEmpty(t *testing.T) {
	resp := &entity.RateResponse{Table: "A", Currency: "dolar amerykański", Code: "USD"}
	mockAPI := new(mocks.MockNBPAPI)
	mockAPI.On("FetchCurrencyRateLastN", mock.Anything, "a", "USD", 10).Return(resp, nil)
	svc := newRateService(mockAPI)

	result := svc.CurrencyRateLastN(context.Background(), "USD", 10, "a")

	assert.Equal(t, "No rate data available for USD.", result)
}
