package mapping

import (
	"fmt"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// ToDomainJobType converts a job request into the matching compensation variant.
func ToDomainJobType(req dto.CreateJobRequest) (domain.JobType, error) {
	switch req.Kind {
	case dto.JobKindHourly:
		return domain.Hourly{Rate: req.HourlyRate}, nil
	case dto.JobKindSalary:
		return domain.Salary{YearlyAmount: req.YearlySalary}, nil
	default:
		return nil, fmt.Errorf("%w: unknown job kind '%s'", apperrors.ErrValidation, req.Kind)
	}
}

// ToDomainJob converts a job request into a new job.
func ToDomainJob(req dto.CreateJobRequest) (*domain.Job, error) {
	jobType, err := ToDomainJobType(req)
	if err != nil {
		return nil, err
	}
	return domain.NewJob(req.Title, jobType), nil
}
