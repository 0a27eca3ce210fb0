package dto

// MoneyInput is an amount in a currency as supplied by a caller.
type MoneyInput struct {
	Amount       int
	CurrencyCode string `validate:"required,len=3,uppercase"`
}

// ConvertMoneyRequest asks for an amount expressed in another currency.
type ConvertMoneyRequest struct {
	Amount           int
	FromCurrencyCode string `validate:"required,len=3,uppercase"`
	ToCurrencyCode   string `validate:"required,len=3,uppercase"`
}

// MoneyOperationRequest holds the operands of an addition or subtraction.
type MoneyOperationRequest struct {
	Left  MoneyInput
	Right MoneyInput
}
