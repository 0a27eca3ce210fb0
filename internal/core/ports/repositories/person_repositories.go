package repositories

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a specific person by its unique identifier.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ListPersons retrieves every registered person.
	ListPersons(ctx context.Context) ([]*domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson registers a new person.
	SavePerson(ctx context.Context, person *domain.Person) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
