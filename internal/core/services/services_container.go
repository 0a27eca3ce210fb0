package services

import (
	"log/slog"
	"sync"

	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Person and family services share one domain lock since they mutate the same persons.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	lock := &sync.Mutex{}
	common := []ServiceOption{
		WithDomainLock(lock),
		WithLogger(logger),
	}

	return &portssvc.ServiceContainer{
		Person:   NewPersonService(repos.PersonRepo, common...),
		Family:   NewFamilyService(repos.FamilyRepo, repos.PersonRepo, cfg.ReportingCurrency, common...),
		Exchange: NewExchangeService(common...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PersonSvcFacade   = (*personService)(nil)
	_ portssvc.FamilySvcFacade   = (*familyService)(nil)
	_ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)
)
