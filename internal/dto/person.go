package dto

// CreatePersonRequest defines the data needed to register a person.
// Either name may be omitted.
type CreatePersonRequest struct {
	FirstName *string `validate:"omitempty,min=1"`
	LastName  *string `validate:"omitempty,min=1"`
	Age       int     `validate:"gte=0,lte=150"`
}
