package dto

import "github.com/shopspring/decimal"

// CreateFamilyRequest defines the two registered persons founding a family.
type CreateFamilyRequest struct {
	Spouse1ID string `validate:"required,uuid"`
	Spouse2ID string `validate:"required,uuid,nefield=Spouse1ID"`
}

// HouseholdIncomeResponse reports a family's income in one currency.
type HouseholdIncomeResponse struct {
	FamilyID       string
	Amount         decimal.Decimal
	CurrencyCode   string
	Formatted      string // e.g. "€30000"
	EarningMembers int
}
