package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/utils/mapping"
)

// personService implements the PersonSvcFacade interface
type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates a new person service with the provided options
func NewPersonService(repo portsrepo.PersonRepositoryFacade, options ...ServiceOption) portssvc.PersonSvcFacade {
	return &personService{
		BaseService: newBaseService(options...),
		personRepo:  repo,
	}
}

// Ensure personService implements the PersonSvcFacade interface
var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	if err := dto.Validate(req); err != nil {
		s.LogDebug(ctx, "Invalid person request", slog.String("error", err.Error()))
		return nil, err
	}

	person := mapping.ToDomainPersonFromRequest(req)
	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to save person", slog.String("person_id", person.ID().String()))
		return nil, fmt.Errorf("failed to create person in service: %w", err)
	}

	s.LogInfo(ctx, "Person created",
		slog.String("person_id", person.ID().String()),
		slog.Int("age", person.Age()))
	return person, nil
}

func (s *personService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get person in service: %w", err)
	}
	return person, nil
}

func (s *personService) ListPersons(ctx context.Context) ([]*domain.Person, error) {
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons in service: %w", err)
	}
	// Return empty slice if no persons found, not nil
	if persons == nil {
		return []*domain.Person{}, nil
	}
	return persons, nil
}

func (s *personService) DescribePerson(ctx context.Context, personID string) (string, error) {
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return "", err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()
	return person.String(), nil
}

func (s *personService) AssignJob(ctx context.Context, personID string, req dto.CreateJobRequest) (*domain.Person, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	job, err := mapping.ToDomainJob(req)
	if err != nil {
		return nil, err
	}
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()

	person.SetJob(job)
	if person.Job() != job {
		// defined no-op below working age, not an error
		s.LogDebug(ctx, "Job assignment ignored below working age",
			slog.String("person_id", personID),
			slog.Int("age", person.Age()),
			slog.Int("min_age", domain.MinWorkingAge))
		return person, nil
	}

	s.LogInfo(ctx, "Job assigned",
		slog.String("person_id", personID),
		slog.String("title", job.Title()),
		slog.String("type", job.Type().String()))
	return person, nil
}

func (s *personService) RaiseJob(ctx context.Context, personID string, req dto.RaiseJobRequest) (*domain.Person, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()

	job := person.Job()
	if job == nil {
		return nil, fmt.Errorf("%w: person %s has no job", apperrors.ErrValidation, personID)
	}

	switch req.By {
	case dto.RaiseByAmount:
		err = job.RaiseByAmount(req.Value)
	case dto.RaiseByPercent:
		err = job.RaiseByPercent(req.Value)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to apply raise",
			slog.String("person_id", personID),
			slog.String("by", string(req.By)),
			slog.Float64("value", req.Value))
		return nil, err
	}

	s.LogInfo(ctx, "Raise applied",
		slog.String("person_id", personID),
		slog.String("type", job.Type().String()))
	return person, nil
}

func (s *personService) ConvertJob(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	s.DomainLock.Lock()
	defer s.DomainLock.Unlock()

	job := person.Job()
	if job == nil {
		return nil, fmt.Errorf("%w: person %s has no job", apperrors.ErrValidation, personID)
	}
	if err := job.Convert(); err != nil {
		s.LogError(ctx, err, "Failed to convert job", slog.String("person_id", personID))
		return nil, err
	}

	s.LogInfo(ctx, "Job converted",
		slog.String("person_id", personID),
		slog.String("type", job.Type().String()))
	return person, nil
}
