package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency code that is not in the rate table.
var ErrUnknownCurrency = fmt.Errorf("%w: unknown currency", ErrValidation)

// ErrNegativeSalary indicates a salary adjustment that would drop below zero.
var ErrNegativeSalary = fmt.Errorf("%w: salary cannot be negative", ErrValidation)
