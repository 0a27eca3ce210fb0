package mapping

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// ToDomainPersonFromRequest converts a person request into a new person.
func ToDomainPersonFromRequest(req dto.CreatePersonRequest) *domain.Person {
	return domain.NewPersonWithNames(req.FirstName, req.LastName, req.Age)
}
