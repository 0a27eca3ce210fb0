package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// PersonReaderSvc defines read operations for persons
type PersonReaderSvc interface {
	// GetPersonByID retrieves a person by its ID.
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ListPersons retrieves every registered person.
	ListPersons(ctx context.Context) ([]*domain.Person, error)

	// DescribePerson returns the debug representation of a person.
	DescribePerson(ctx context.Context, personID string) (string, error)
}

// PersonWriterSvc defines write operations for persons
type PersonWriterSvc interface {
	// CreatePerson registers a new person.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)
}

// EmploymentSvc defines operations on a person's job
type EmploymentSvc interface {
	// AssignJob gives the person a new job, subject to the working-age gate.
	AssignJob(ctx context.Context, personID string, req dto.CreateJobRequest) (*domain.Person, error)

	// RaiseJob applies a raise to the person's current job.
	RaiseJob(ctx context.Context, personID string, req dto.RaiseJobRequest) (*domain.Person, error)

	// ConvertJob converts the person's hourly job into a salaried one.
	ConvertJob(ctx context.Context, personID string) (*domain.Person, error)
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
	EmploymentSvc
}
