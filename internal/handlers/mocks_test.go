package handlers_test

import (
	"context"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	portssvc "github.com/skogge/CountryCurrencyPicker/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/currency"
)

// --- Mock CountryService ---
type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) GetCountry(ctx context.Context, code string) (*domain.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}
func (m *MockCountryService) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}
func (m *MockCountryService) GetCountryWithCurrency(ctx context.Context, code string) (*domain.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}
func (m *MockCountryService) ListAll(ctx context.Context, filter string) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}
func (m *MockCountryService) ListAllWithCurrencies(ctx context.Context, filter string) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CountrySvcFacade = (*MockCountryService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrency(ctx context.Context, countryCode string) (*domain.Currency, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) GetCurrencyByUnit(ctx context.Context, unit currency.Unit) *domain.Currency {
	args := m.Called(ctx, unit)
	return args.Get(0).(*domain.Currency)
}
func (m *MockCurrencyService) GetCurrencyWithCountries(ctx context.Context, unit currency.Unit) (*domain.Currency, error) {
	args := m.Called(ctx, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ParseCurrencyCode(ctx context.Context, code string) (currency.Unit, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(currency.Unit), args.Error(1)
}
func (m *MockCurrencyService) GetAllCurrencies(ctx context.Context) []currency.Unit {
	args := m.Called(ctx)
	return args.Get(0).([]currency.Unit)
}
func (m *MockCurrencyService) ListAll(ctx context.Context, filter string) ([]domain.Currency, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListAllWithCountries(ctx context.Context, filter string) ([]domain.Currency, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)
