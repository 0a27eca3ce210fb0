package domain

import "sort"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string  // e.g., "USD"
	Symbol       string  // e.g., "$"
	Name         string  // e.g., "US Dollar"
	Precision    int     // display precision
	Rate         float64 // units of this currency per 1 USD
}

// currencies is the fixed rate table used for every conversion.
var currencies = map[string]Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2, Rate: 1.0},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2, Rate: 0.5},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2, Rate: 1.5},
	"CAN": {CurrencyCode: "CAN", Symbol: "C$", Name: "Canadian Dollar", Precision: 2, Rate: 1.25},
}

// LookupCurrency returns the table entry for code.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// IsKnownCurrency reports whether code is in the rate table.
func IsKnownCurrency(code string) bool {
	_, ok := currencies[code]
	return ok
}

// ListCurrencies returns every supported currency ordered by code.
func ListCurrencies() []Currency {
	list := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CurrencyCode < list[j].CurrencyCode
	})
	return list
}
