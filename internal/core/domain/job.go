package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/household_finance/internal/apperrors"
)

const (
	// HoursPerYear is the working-hours assumption used to turn an hourly rate into a salary.
	HoursPerYear = 2000
	// SalaryRoundingStep is the multiple a converted salary is rounded up to.
	SalaryRoundingStep = 5000
)

// JobType is the compensation of a Job: either Hourly or Salary.
type JobType interface {
	isJobType()
	String() string
}

// Hourly pays Rate per hour worked.
type Hourly struct {
	Rate float64
}

// Salary pays a fixed YearlyAmount regardless of hours.
type Salary struct {
	YearlyAmount uint
}

func (Hourly) isJobType() {}
func (Salary) isJobType() {}

func (h Hourly) String() string {
	rate := strconv.FormatFloat(h.Rate, 'f', -1, 64)
	if !strings.ContainsAny(rate, ".") {
		rate += ".0"
	}
	return "Hourly(" + rate + ")"
}

func (s Salary) String() string {
	return "Salary(" + strconv.FormatUint(uint64(s.YearlyAmount), 10) + ")"
}

// Job is a title plus its current compensation.
type Job struct {
	title   string
	jobType JobType
}

// NewJob creates a job. t must be an Hourly or Salary value.
func NewJob(title string, t JobType) *Job {
	return &Job{title: title, jobType: t}
}

func (j *Job) Title() string { return j.title }

func (j *Job) Type() JobType { return j.jobType }

// CalculateIncome returns the income earned over hours. Salaried jobs
// ignore hours and return the yearly amount.
func (j *Job) CalculateIncome(hours int) int {
	switch t := j.jobType.(type) {
	case Salary:
		return int(t.YearlyAmount)
	case Hourly:
		return int(float64(hours) * t.Rate)
	default:
		return 0
	}
}

// RaiseByAmount adds amount to the salary or hourly rate.
func (j *Job) RaiseByAmount(amount float64) error {
	switch t := j.jobType.(type) {
	case Salary:
		raised, err := toSalary(float64(t.YearlyAmount) + amount)
		if err != nil {
			return fmt.Errorf("raise %q by %v: %w", j.title, amount, err)
		}
		j.jobType = raised
	case Hourly:
		j.jobType = Hourly{Rate: t.Rate + amount}
	}
	return nil
}

// RaiseByPercent scales the salary or hourly rate by 1+percent.
func (j *Job) RaiseByPercent(percent float64) error {
	switch t := j.jobType.(type) {
	case Salary:
		raised, err := toSalary(float64(t.YearlyAmount) * (1.0 + percent))
		if err != nil {
			return fmt.Errorf("raise %q by %v%%: %w", j.title, percent*100, err)
		}
		j.jobType = raised
	case Hourly:
		j.jobType = Hourly{Rate: t.Rate * (1.0 + percent)}
	}
	return nil
}

// Convert turns an hourly job into a salaried one, rounding the yearly
// amount up to the next multiple of SalaryRoundingStep. Salaried jobs are
// left untouched.
func (j *Job) Convert() error {
	h, ok := j.jobType.(Hourly)
	if !ok {
		return nil
	}
	yearly := int(math.Floor(h.Rate * HoursPerYear))
	if yearly < 0 {
		return fmt.Errorf("convert %q: %w", j.title, apperrors.ErrNegativeSalary)
	}
	j.jobType = Salary{YearlyAmount: uint(ceilToMultiple(yearly, SalaryRoundingStep))}
	return nil
}

func toSalary(amount float64) (Salary, error) {
	if amount < 0 {
		return Salary{}, apperrors.ErrNegativeSalary
	}
	return Salary{YearlyAmount: uint(amount)}, nil
}

// ceilToMultiple rounds a non-negative n up to the nearest multiple of step.
func ceilToMultiple(n, step int) int {
	return (n + step - 1) / step * step
}
