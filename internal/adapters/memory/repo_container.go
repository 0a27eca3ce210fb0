package memory

import portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"

// NewRepositoryProvider creates empty in-memory registries for every repository port.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonRepo: NewPersonRepository(),
		FamilyRepo: NewFamilyRepository(),
	}
}
