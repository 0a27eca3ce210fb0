package dto

// JobKind selects the compensation variant of a job.
type JobKind string

const (
	JobKindHourly JobKind = "HOURLY"
	JobKindSalary JobKind = "SALARY"
)

// RaiseKind selects how a raise is applied.
type RaiseKind string

const (
	RaiseByAmount  RaiseKind = "AMOUNT"
	RaiseByPercent RaiseKind = "PERCENT"
)

// CreateJobRequest defines the data needed to create a job.
// HourlyRate is used for HOURLY jobs, YearlySalary for SALARY jobs.
type CreateJobRequest struct {
	Title        string  `validate:"required"`
	Kind         JobKind `validate:"required,oneof=HOURLY SALARY"`
	HourlyRate   float64 `validate:"gte=0"`
	YearlySalary uint
}

// RaiseJobRequest defines a raise. Value is an absolute amount for AMOUNT
// and a fraction (0.1 = 10%) for PERCENT.
type RaiseJobRequest struct {
	By    RaiseKind `validate:"required,oneof=AMOUNT PERCENT"`
	Value float64
}
