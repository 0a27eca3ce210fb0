package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// MinWorkingAge is the minimum age at which a person can hold a job.
	MinWorkingAge = 16
	// MinMarriageAge is the minimum age at which a person can have a spouse.
	MinMarriageAge = 18
)

// Person is an individual with optional first and last names. Persons have
// reference identity: two persons with the same attributes are distinct.
//
// Job and spouse assignments are age gated. An assignment below the gate
// is silently ignored.
type Person struct {
	id        uuid.UUID
	firstName *string
	lastName  *string
	age       int
	job       *Job
	spouse    *Person // not owned; Family owns its members
}

// NewPerson creates a person with both names.
func NewPerson(firstName, lastName string, age int) *Person {
	return NewPersonWithNames(&firstName, &lastName, age)
}

// NewPersonWithFirstName creates a person without a last name.
func NewPersonWithFirstName(firstName string, age int) *Person {
	return NewPersonWithNames(&firstName, nil, age)
}

// NewPersonWithLastName creates a person without a first name.
func NewPersonWithLastName(lastName string, age int) *Person {
	return NewPersonWithNames(nil, &lastName, age)
}

// NewPersonWithNames creates a person from optional names; either may be nil.
func NewPersonWithNames(firstName, lastName *string, age int) *Person {
	return &Person{
		id:        uuid.New(),
		firstName: cloneString(firstName),
		lastName:  cloneString(lastName),
		age:       age,
	}
}

func (p *Person) ID() uuid.UUID { return p.id }

// FirstName returns the first name, or "" when absent.
func (p *Person) FirstName() string {
	if p.firstName == nil {
		return ""
	}
	return *p.firstName
}

// LastName returns the last name, or "" when absent.
func (p *Person) LastName() string {
	if p.lastName == nil {
		return ""
	}
	return *p.lastName
}

func (p *Person) HasFirstName() bool { return p.firstName != nil }

func (p *Person) HasLastName() bool { return p.lastName != nil }

func (p *Person) Age() int { return p.age }

func (p *Person) Job() *Job { return p.job }

// SetJob assigns job when the person is at least MinWorkingAge.
func (p *Person) SetJob(job *Job) {
	if p.age < MinWorkingAge {
		return
	}
	p.job = job
}

func (p *Person) Spouse() *Person { return p.spouse }

// SetSpouse assigns spouse when the person is at least MinMarriageAge.
// The link is one-way; Family keeps both sides consistent.
func (p *Person) SetSpouse(spouse *Person) {
	if p.age < MinMarriageAge {
		return
	}
	p.spouse = spouse
}

// String renders the debug form
// "[Person: firstName:<F> lastName:<L> age:<A> job:<J> spouse:<S>]".
// Absent names and a missing job or spouse print as nil; a spouse prints
// its FirstName, which is empty when absent.
func (p *Person) String() string {
	job := "nil"
	if p.job != nil && p.job.Type() != nil {
		job = p.job.Type().String()
	}
	spouse := "nil"
	if p.spouse != nil {
		spouse = p.spouse.FirstName()
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		orNil(p.firstName), orNil(p.lastName), p.age, job, spouse)
}

func orNil(s *string) string {
	if s == nil {
		return "nil"
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
