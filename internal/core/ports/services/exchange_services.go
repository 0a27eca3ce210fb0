package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeReaderSvc defines read operations for the rate table
type ExchangeReaderSvc interface {
	// GetExchangeRate returns how many units of toCode one unit of fromCode buys.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// MoneySvc defines arithmetic on money values
type MoneySvc interface {
	// Convert expresses an amount in another currency.
	Convert(ctx context.Context, req dto.ConvertMoneyRequest) (domain.Money, error)

	// Add sums two amounts; the result is in the right-hand currency.
	Add(ctx context.Context, req dto.MoneyOperationRequest) (domain.Money, error)

	// Subtract subtracts right from left; the result is in the right-hand currency.
	Subtract(ctx context.Context, req dto.MoneyOperationRequest) (domain.Money, error)
}

// ExchangeSvcFacade combines all currency-related service interfaces
type ExchangeSvcFacade interface {
	ExchangeReaderSvc
	MoneySvc
}
