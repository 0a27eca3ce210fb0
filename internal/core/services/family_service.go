package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/utils"
)

// incomeCurrency is the currency household income is computed in.
const incomeCurrency = "USD"

// familyService implements the FamilySvcFacade interface
type familyService struct {
	BaseService
	familyRepo        portsrepo.FamilyRepositoryFacade
	personRepo        portsrepo.PersonReader
	reportingCurrency string
}

// NewFamilyService creates a new family service. reportingCurrency is used
// by GetHouseholdIncome when the caller does not name a currency.
func NewFamilyService(familyRepo portsrepo.FamilyRepositoryFacade, personRepo portsrepo.PersonReader, reportingCurrency string, options ...ServiceOption) portssvc.FamilySvcFacade {
	if reportingCurrency == "" {
		reportingCurrency = incomeCurrency
	}
	return &familyService{
		BaseService:       newBaseService(options...),
		familyRepo:        familyRepo,
		personRepo:        personRepo,
		reportingCurrency: reportingCurrency,
	}
}

// Ensure familyService implements the FamilySvcFacade interface
var _ portssvc.FamilySvcFacade = (*familyService)(nil)

func (s *familyService) CreateFamily(ctx context.Context, req dto.CreateFamilyRequest) (*domain.Family, error) {
	if err := dto.Validate(req); err != nil {
		s.LogDebug(ctx, "Invalid family request", slog.String("error", err.Error()))
		return nil, err
	}

	spouse1, err := s.findPerson(ctx, req.Spouse1ID, "spouse1")
	if err != nil {
		return nil, err
	}
	spouse2, err := s.findPerson(ctx, req.Spouse2ID, "spouse2")
	if err != nil {
		return nil, err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()

	for _, id := range []string{req.Spouse1ID, req.Spouse2ID} {
		if err := s.ensureNotInFamily(ctx, id); err != nil {
			return nil, err
		}
	}

	family := domain.NewFamily(spouse1, spouse2)
	if spouse1.Spouse() != spouse2 || spouse2.Spouse() != spouse1 {
		s.LogDebug(ctx, "Spouses not linked to each other",
			slog.String("spouse1_id", req.Spouse1ID),
			slog.Int("spouse1_age", spouse1.Age()),
			slog.String("spouse2_id", req.Spouse2ID),
			slog.Int("spouse2_age", spouse2.Age()))
	}

	if err := s.familyRepo.SaveFamily(ctx, family); err != nil {
		s.LogError(ctx, err, "Failed to save family", slog.String("family_id", family.ID().String()))
		return nil, fmt.Errorf("failed to create family in service: %w", err)
	}

	s.LogInfo(ctx, "Family created", slog.String("family_id", family.ID().String()))
	return family, nil
}

func (s *familyService) GetFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	family, err := s.familyRepo.FindFamilyByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family in service: %w", err)
	}
	return family, nil
}

func (s *familyService) HaveChild(ctx context.Context, familyID string, childID string) (bool, error) {
	family, err := s.GetFamilyByID(ctx, familyID)
	if err != nil {
		return false, err
	}
	child, err := s.findPerson(ctx, childID, "child")
	if err != nil {
		return false, err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()

	if err := s.ensureNotInFamily(ctx, childID); err != nil {
		return false, err
	}

	if !family.HaveChild(child) {
		s.LogDebug(ctx, "Child not permitted, no spouse above parenting age",
			slog.String("family_id", familyID),
			slog.Int("parenting_age", domain.ParentingAge))
		return false, nil
	}

	s.LogInfo(ctx, "Child added",
		slog.String("family_id", familyID),
		slog.String("child_id", childID))
	return true, nil
}

func (s *familyService) GetHouseholdIncome(ctx context.Context, familyID string, currency string) (*dto.HouseholdIncomeResponse, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = s.reportingCurrency
	}

	family, err := s.GetFamilyByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	s.DomainLock.Lock()
	income := family.HouseholdIncome()
	earning := 0
	for _, member := range family.Members() {
		if member.Job() != nil {
			earning++
		}
	}
	s.DomainLock.Unlock()

	usd, err := domain.NewMoney(income, incomeCurrency)
	if err != nil {
		return nil, err
	}
	converted, err := usd.Convert(currency)
	if err != nil {
		s.LogDebug(ctx, "Household income requested in unknown currency",
			slog.String("family_id", familyID),
			slog.String("currency", currency))
		return nil, err
	}

	return &dto.HouseholdIncomeResponse{
		FamilyID:       familyID,
		Amount:         converted.Decimal(),
		CurrencyCode:   converted.Currency(),
		Formatted:      utils.FormatMoney(converted),
		EarningMembers: earning,
	}, nil
}

func (s *familyService) findPerson(ctx context.Context, personID, role string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", role, err)
	}
	return person, nil
}

// ensureNotInFamily fails with ErrDuplicate when personID already belongs to a family.
func (s *familyService) ensureNotInFamily(ctx context.Context, personID string) error {
	existing, err := s.familyRepo.FindFamilyByMember(ctx, personID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: person %s already belongs to family %s", apperrors.ErrDuplicate, personID, existing.ID())
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check family membership: %w", err)
	}
}
