package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/shopspring/decimal"
)

// exchangeService implements the ExchangeSvcFacade interface on top of the fixed rate table
type exchangeService struct {
	BaseService
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(options ...ServiceOption) portssvc.ExchangeSvcFacade {
	return &exchangeService{BaseService: newBaseService(options...)}
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// GetExchangeRate returns the cross rate between two currencies of the table.
func (s *exchangeService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	from, ok := domain.LookupCurrency(fromCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: 'from' currency code '%s'", apperrors.ErrUnknownCurrency, fromCode)
	}
	to, ok := domain.LookupCurrency(toCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: 'to' currency code '%s'", apperrors.ErrUnknownCurrency, toCode)
	}

	return decimal.NewFromFloat(to.Rate).Div(decimal.NewFromFloat(from.Rate)), nil
}

func (s *exchangeService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.ListCurrencies(), nil
}

func (s *exchangeService) Convert(ctx context.Context, req dto.ConvertMoneyRequest) (domain.Money, error) {
	if err := dto.Validate(req); err != nil {
		return domain.Money{}, err
	}
	money, err := domain.NewMoney(req.Amount, req.FromCurrencyCode)
	if err != nil {
		return domain.Money{}, err
	}

	converted, err := money.Convert(req.ToCurrencyCode)
	if err != nil {
		s.LogDebug(ctx, "Conversion rejected",
			slog.String("from", req.FromCurrencyCode),
			slog.String("to", req.ToCurrencyCode),
			slog.String("error", err.Error()))
		return domain.Money{}, err
	}
	return converted, nil
}

func (s *exchangeService) Add(ctx context.Context, req dto.MoneyOperationRequest) (domain.Money, error) {
	left, right, err := s.operands(req)
	if err != nil {
		return domain.Money{}, err
	}
	return left.Add(right)
}

func (s *exchangeService) Subtract(ctx context.Context, req dto.MoneyOperationRequest) (domain.Money, error) {
	left, right, err := s.operands(req)
	if err != nil {
		return domain.Money{}, err
	}
	return left.Subtract(right)
}

func (s *exchangeService) operands(req dto.MoneyOperationRequest) (domain.Money, domain.Money, error) {
	if err := dto.Validate(req); err != nil {
		return domain.Money{}, domain.Money{}, err
	}
	left, err := domain.NewMoney(req.Left.Amount, req.Left.CurrencyCode)
	if err != nil {
		return domain.Money{}, domain.Money{}, fmt.Errorf("left operand: %w", err)
	}
	right, err := domain.NewMoney(req.Right.Amount, req.Right.CurrencyCode)
	if err != nil {
		return domain.Money{}, domain.Money{}, fmt.Errorf("right operand: %w", err)
	}
	return left, right, nil
}
