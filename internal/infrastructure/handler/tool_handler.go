// Package handler internal/infrastructure/handler/tool_handler.go
package handler

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/application/service"
	"github.com/rs/zerolog"
)

// ToolHandler exposes the rate and gold services as MCP tools
type ToolHandler struct {
	rates  *service.RateService
	gold   *service.GoldService
	logger zerolog.Logger
}

// NewToolHandler creates a new tool handler
func NewToolHandler(rates *service.RateService, gold *service.GoldService, log zerolog.Logger) *ToolHandler {
	return &ToolHandler{
		rates:  rates,
		gold:   gold,
		logger: log,
	}
}

// CurrencyRateArgs are the arguments for the get_currency_rate tool
type CurrencyRateArgs struct {
	Code  string `json:"code" jsonschema:"Three-letter currency code (e.g., USD, EUR, GBP) following ISO 4217"`
	Date  string `json:"date,omitempty" jsonschema:"Specific date in YYYY-MM-DD format (ISO 8601). If empty, gets the current rate."`
	Table string `json:"table,omitempty" jsonschema:"Table type: 'a' for average rates, 'b' for other currencies, 'c' for bid/ask rates (default: 'a')"`
}

// ExchangeTableArgs are the arguments for the get_exchange_table tool
type ExchangeTableArgs struct {
	Date  string `json:"date,omitempty" jsonschema:"Specific date in YYYY-MM-DD format (ISO 8601). If empty, gets the current table."`
	Table string `json:"table,omitempty" jsonschema:"Table type: 'a' for average rates, 'b' for other currencies, 'c' for bid/ask rates (default: 'a')"`
}

// RateHistoryArgs are the arguments for the get_currency_rate_history tool
type RateHistoryArgs struct {
	Code      string `json:"code" jsonschema:"Three-letter currency code (e.g., USD, EUR, GBP) following ISO 4217"`
	StartDate string `json:"start_date" jsonschema:"Start date in YYYY-MM-DD format (ISO 8601)"`
	EndDate   string `json:"end_date" jsonschema:"End date in YYYY-MM-DD format (ISO 8601)"`
	Table     string `json:"table,omitempty" jsonschema:"Table type: 'a' for average rates, 'b' for other currencies, 'c' for bid/ask rates (default: 'a')"`
}

// RateLastNArgs are the arguments for the get_currency_rate_last_n tool
type RateLastNArgs struct {
	Code  string `json:"code" jsonschema:"Three-letter currency code (e.g., USD, EUR, GBP) following ISO 4217"`
	Count int    `json:"count" jsonschema:"Number of last rates to retrieve (max 255)"`
	Table string `json:"table,omitempty" jsonschema:"Table type: 'a' for average rates, 'b' for other currencies, 'c' for bid/ask rates (default: 'a')"`
}

// GoldPriceArgs are the arguments for the get_gold_price tool
type GoldPriceArgs struct {
	Date string `json:"date,omitempty" jsonschema:"Specific date in YYYY-MM-DD format (ISO 8601). If empty, gets the current price."`
}

// GoldHistoryArgs are the arguments for the get_gold_price_history tool
type GoldHistoryArgs struct {
	StartDate string `json:"start_date" jsonschema:"Start date in YYYY-MM-DD format (ISO 8601)"`
	EndDate   string `json:"end_date" jsonschema:"End date in YYYY-MM-DD format (ISO 8601)"`
}

// GoldLastNArgs are the arguments for the get_gold_price_last_n tool
type GoldLastNArgs struct {
	Count int `json:"count" jsonschema:"Number of last gold prices to retrieve (max 255)"`
}

// GetCurrencyRate handles the get_currency_rate tool call
func (h *ToolHandler) GetCurrencyRate(ctx context.Context, req *mcp.CallToolRequest, args CurrencyRateArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.rates.CurrencyRate(ctx, args.Code, args.Date, tableOrDefault(args.Table))), nil, nil
}

// GetExchangeTable handles the get_exchange_table tool call
func (h *ToolHandler) GetExchangeTable(ctx context.Context, req *mcp.CallToolRequest, args ExchangeTableArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.rates.ExchangeTable(ctx, args.Date, tableOrDefault(args.Table))), nil, nil
}

// GetCurrencyRateHistory handles the get_currency_rate_history tool call
func (h *ToolHandler) GetCurrencyRateHistory(ctx context.Context, req *mcp.CallToolRequest, args RateHistoryArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.rates.CurrencyRateHistory(ctx, args.Code, args.StartDate, args.EndDate, tableOrDefault(args.Table))), nil, nil
}

// GetCurrencyRateLastN handles the get_currency_rate_last_n tool call
func (h *ToolHandler) GetCurrencyRateLastN(ctx context.Context, req *mcp.CallToolRequest, args RateLastNArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.rates.CurrencyRateLastN(ctx, args.Code, args.Count, tableOrDefault(args.Table))), nil, nil
}

// GetGoldPrice handles the get_gold_price tool call
func (h *ToolHandler) GetGoldPrice(ctx context.Context, req *mcp.CallToolRequest, args GoldPriceArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.gold.GoldPrice(ctx, args.Date)), nil, nil
}

// GetGoldPriceHistory handles the get_gold_price_history tool call
func (h *ToolHandler) GetGoldPriceHistory(ctx context.Context, req *mcp.CallToolRequest, args GoldHistoryArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.gold.GoldPriceHistory(ctx, args.StartDate, args.EndDate)), nil, nil
}

// GetGoldPriceLastN handles the get_gold_price_last_n tool call
func (h *ToolHandler) GetGoldPriceLastN(ctx context.Context, req *mcp.CallToolRequest, args GoldLastNArgs) (*mcp.CallToolResult, any, error) {
	return textResult(h.gold.GoldPriceLastN(ctx, args.Count)), nil, nil
}

// RegisterTools registers all NBP tools on the MCP server
func (h *ToolHandler) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_currency_rate",
		Description: "Get exchange rate for a currency, either current or for a specific date.",
		Annotations: &mcp.ToolAnnotations{Title: "Currency Rate"},
	}, h.GetCurrencyRate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_exchange_table",
		Description: "Get exchange rate table, either current or for a specific date.",
		Annotations: &mcp.ToolAnnotations{Title: "Exchange Table"},
	}, h.GetExchangeTable)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_currency_rate_history",
		Description: "Get historical exchange rates for a currency within a date range.",
		Annotations: &mcp.ToolAnnotations{Title: "Currency Rate History"},
	}, h.GetCurrencyRateHistory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_currency_rate_last_n",
		Description: "Get last N exchange rates for a currency.",
		Annotations: &mcp.ToolAnnotations{Title: "Last N Currency Rates"},
	}, h.GetCurrencyRateLastN)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_gold_price",
		Description: "Get gold price in PLN per gram, either current or for a specific date.",
		Annotations: &mcp.ToolAnnotations{Title: "Gold Price"},
	}, h.GetGoldPrice)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_gold_price_history",
		Description: "Get historical gold prices within a date range.",
		Annotations: &mcp.ToolAnnotations{Title: "Gold Price History"},
	}, h.GetGoldPriceHistory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_gold_price_last_n",
		Description: "Get last N gold prices.",
		Annotations: &mcp.ToolAnnotations{Title: "Last N Gold Prices"},
	}, h.GetGoldPriceLastN)

	h.logger.Info().
		Strs("tools", []string{
			"get_currency_rate",
			"get_exchange_table",
			"get_currency_rate_history",
			"get_currency_rate_last_n",
			"get_gold_price",
			"get_gold_price_history",
			"get_gold_price_last_n",
		}).
		Msg("MCP tools registered")
}

// tableOrDefault applies the default table type when the caller omits it
func tableOrDefault(table string) string {
	if table == "" {
		return "a"
	}
	return table
}

// textResult wraps tool output in a single text content block
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
