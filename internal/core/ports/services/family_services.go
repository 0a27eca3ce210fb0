package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// FamilyReaderSvc defines read operations for families
type FamilyReaderSvc interface {
	// GetFamilyByID retrieves a family by its ID.
	GetFamilyByID(ctx context.Context, familyID string) (*domain.Family, error)

	// GetHouseholdIncome reports the family's income in the requested currency.
	// An empty currency selects the configured reporting currency.
	GetHouseholdIncome(ctx context.Context, familyID string, currency string) (*dto.HouseholdIncomeResponse, error)
}

// FamilyWriterSvc defines write operations for families
type FamilyWriterSvc interface {
	// CreateFamily founds a family from two registered persons.
	CreateFamily(ctx context.Context, req dto.CreateFamilyRequest) (*domain.Family, error)

	// HaveChild adds a registered person to the family as a child.
	// It reports false when neither spouse is old enough.
	HaveChild(ctx context.Context, familyID string, childID string) (bool, error)
}

// FamilySvcFacade combines all family-related service interfaces
type FamilySvcFacade interface {
	FamilyReaderSvc
	FamilyWriterSvc
}
