package repositories

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// FamilyReader defines read operations for family data
type FamilyReader interface {
	// FindFamilyByID retrieves a specific family by its unique identifier.
	FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error)

	// FindFamilyByMember retrieves the family a person belongs to.
	FindFamilyByMember(ctx context.Context, personID string) (*domain.Family, error)

	// ListFamilies retrieves every registered family.
	ListFamilies(ctx context.Context) ([]*domain.Family, error)
}

// FamilyWriter defines write operations for family data
type FamilyWriter interface {
	// SaveFamily registers a new family.
	SaveFamily(ctx context.Context, family *domain.Family) error
}

// FamilyRepositoryFacade combines all family-related repository interfaces
type FamilyRepositoryFacade interface {
	FamilyReader
	FamilyWriter
}
