package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
)

// PersonRepository is an in-process registry of persons.
type PersonRepository struct {
	mu      sync.RWMutex
	persons map[string]*domain.Person
	order   []string
}

// NewPersonRepository creates an empty person registry.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{persons: make(map[string]*domain.Person)}
}

var _ portsrepo.PersonRepositoryFacade = (*PersonRepository)(nil)

// SavePerson registers a person. Registering the same person twice fails with ErrDuplicate.
func (r *PersonRepository) SavePerson(ctx context.Context, person *domain.Person) error {
	id := person.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.persons[id]; exists {
		return fmt.Errorf("person %s: %w", id, apperrors.ErrDuplicate)
	}
	r.persons[id] = person
	r.order = append(r.order, id)
	return nil
}

// FindPersonByID retrieves a person by ID.
func (r *PersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.persons[personID]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}
	return person, nil
}

// ListPersons returns persons in registration order.
func (r *PersonRepository) ListPersons(ctx context.Context) ([]*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persons := make([]*domain.Person, 0, len(r.order))
	for _, id := range r.order {
		persons = append(persons, r.persons[id])
	}
	return persons, nil
}
