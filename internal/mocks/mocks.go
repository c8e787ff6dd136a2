// internal/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/mwalczyk-dev/nbp-mcp-server/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockNBPAPI mocks the NBPAPI interface
type MockNBPAPI struct {
	mock.Mock
}

func (m *MockNBPAPI) FetchCurrencyRate(ctx context.Context, table, code, date string) (*entity.RateResponse, error) {
	args := m.Called(ctx, table, code, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RateResponse), args.Error(1)
}

func (m *MockNBPAPI) FetchCurrencyRateHistory(ctx context.Context, table, code, startDate, endDate string) (*entity.RateResponse, error) {
	args := m.Called(ctx, table, code, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RateResponse), args.Error(1)
}

func (m *MockNBPAPI) FetchCurrencyRateLastN(ctx context.Context, table, code string, count int) (*entity.RateResponse, error) {
	args := m.Called(ctx, table, code, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RateResponse), args.Error(1)
}

func (m *MockNBPAPI) FetchExchangeTables(ctx context.Context, table, date string) ([]entity.ExchangeTable, error) {
	args := m.Called(ctx, table, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExchangeTable), args.Error(1)
}

func (m *MockNBPAPI) FetchGoldPrices(ctx context.Context, date string) ([]entity.GoldPrice, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GoldPrice), args.Error(1)
}

func (m *MockNBPAPI) FetchGoldPriceHistory(ctx context.Context, startDate, endDate string) ([]entity.GoldPrice, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GoldPrice), args.Error(1)
}

func (m *MockNBPAPI) FetchGoldPricesLastN(ctx context.Context, count int) ([]entity.GoldPrice, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GoldPrice), args.Error(1)
}
