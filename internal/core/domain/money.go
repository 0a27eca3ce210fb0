package domain

import (
	"fmt"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an integral amount in one of the supported currencies.
// Values are immutable; every operation returns a new Money.
type Money struct {
	amount   int
	currency string
}

// NewMoney creates a Money, failing with ErrUnknownCurrency when the code is not in the rate table.
func NewMoney(amount int, currency string) (Money, error) {
	if !IsKnownCurrency(currency) {
		return Money{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

func (m Money) Amount() int { return m.amount }

func (m Money) Currency() string { return m.currency }

// Convert expresses m in the target currency. The amount goes through USD
// and is truncated toward zero.
func (m Money) Convert(target string) (Money, error) {
	source, ok := LookupCurrency(m.currency)
	if !ok {
		return Money{}, fmt.Errorf("%w: source %s", apperrors.ErrUnknownCurrency, m.currency)
	}
	dest, ok := LookupCurrency(target)
	if !ok {
		return Money{}, fmt.Errorf("%w: target %s", apperrors.ErrUnknownCurrency, target)
	}

	amountInUSD := float64(m.amount) / source.Rate
	converted := int(amountInUSD * dest.Rate)

	return Money{amount: converted, currency: dest.CurrencyCode}, nil
}

// Add converts m into other's currency and sums the two. The result is
// always in other's currency.
func (m Money) Add(other Money) (Money, error) {
	converted, err := m.Convert(other.currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: other.amount + converted.amount, currency: other.currency}, nil
}

// Subtract converts m into other's currency and returns m minus other, in
// other's currency.
func (m Money) Subtract(other Money) (Money, error) {
	converted, err := m.Convert(other.currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: converted.amount - other.amount, currency: other.currency}, nil
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// Decimal returns the amount as a decimal for formatting and reporting.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m.amount))
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.Decimal().String())
}
