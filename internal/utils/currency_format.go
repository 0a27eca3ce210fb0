package utils

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12 with USD (precision 2) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.Precision)).String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatMoney renders money with its currency symbol, e.g. "£50".
// Unknown currencies fall back to the code followed by a space.
func FormatMoney(m domain.Money) string {
	currency, ok := domain.LookupCurrency(m.Currency())
	if !ok {
		return m.Currency() + " " + FormatWithPrecision(m.Decimal(), 0)
	}
	return currency.Symbol + FormatWithCurrencyPrecision(m.Decimal(), currency)
}
