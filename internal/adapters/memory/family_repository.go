package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
)

// FamilyRepository is an in-process registry of families.
type FamilyRepository struct {
	mu       sync.RWMutex
	families map[string]*domain.Family
	order    []string
}

// NewFamilyRepository creates an empty family registry.
func NewFamilyRepository() *FamilyRepository {
	return &FamilyRepository{families: make(map[string]*domain.Family)}
}

var _ portsrepo.FamilyRepositoryFacade = (*FamilyRepository)(nil)

// SaveFamily registers a family. Registering the same family twice fails with ErrDuplicate.
func (r *FamilyRepository) SaveFamily(ctx context.Context, family *domain.Family) error {
	id := family.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.families[id]; exists {
		return fmt.Errorf("family %s: %w", id, apperrors.ErrDuplicate)
	}
	r.families[id] = family
	r.order = append(r.order, id)
	return nil
}

// FindFamilyByID retrieves a family by ID.
func (r *FamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	family, ok := r.families[familyID]
	if !ok {
		return nil, fmt.Errorf("family %s: %w", familyID, apperrors.ErrNotFound)
	}
	return family, nil
}

// FindFamilyByMember retrieves the family whose members include personID.
// Members are read from the family itself, so children added after
// registration are found too.
func (r *FamilyRepository) FindFamilyByMember(ctx context.Context, personID string) (*domain.Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		family := r.families[id]
		for _, member := range family.Members() {
			if member.ID().String() == personID {
				return family, nil
			}
		}
	}
	return nil, fmt.Errorf("family with member %s: %w", personID, apperrors.ErrNotFound)
}

// ListFamilies returns families in registration order.
func (r *FamilyRepository) ListFamilies(ctx context.Context) ([]*domain.Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]*domain.Family, 0, len(r.order))
	for _, id := range r.order {
		families = append(families, r.families[id])
	}
	return families, nil
}
