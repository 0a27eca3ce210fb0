package domain

import "github.com/google/uuid"

const (
	// ParentingAge is the age one spouse must exceed before the family can have a child.
	ParentingAge = 21
	// AssumedWorkingHours is the yearly hours used for every member's household income.
	AssumedWorkingHours = 2000
)

// Family aggregates two spouses followed by their children, in insertion order.
type Family struct {
	id      uuid.UUID
	members []*Person
}

// NewFamily creates a family from two spouses. When neither has a spouse
// yet they are linked to each other, subject to each person's own age gate.
// Both are members whether or not the link took.
func NewFamily(spouse1, spouse2 *Person) *Family {
	if spouse1.Spouse() == nil && spouse2.Spouse() == nil {
		spouse1.SetSpouse(spouse2)
		spouse2.SetSpouse(spouse1)
	}
	return &Family{
		id:      uuid.New(),
		members: []*Person{spouse1, spouse2},
	}
}

func (f *Family) ID() uuid.UUID { return f.id }

// Members returns a copy of the member list: spouses first, then children.
func (f *Family) Members() []*Person {
	out := make([]*Person, len(f.members))
	copy(out, f.members)
	return out
}

// Spouses returns the two founding members.
func (f *Family) Spouses() (*Person, *Person) {
	return f.members[0], f.members[1]
}

// Children returns the members added through HaveChild.
func (f *Family) Children() []*Person {
	out := make([]*Person, len(f.members)-2)
	copy(out, f.members[2:])
	return out
}

// HaveChild appends child when at least one spouse is older than
// ParentingAge. It reports whether the child was added.
func (f *Family) HaveChild(child *Person) bool {
	if f.members[0].Age() <= ParentingAge && f.members[1].Age() <= ParentingAge {
		return false
	}
	f.members = append(f.members, child)
	return true
}

// HouseholdIncome sums CalculateIncome(AssumedWorkingHours) over every
// member with a job.
func (f *Family) HouseholdIncome() int {
	total := 0
	for _, m := range f.members {
		if job := m.Job(); job != nil {
			total += job.CalculateIncome(AssumedWorkingHours)
		}
	}
	return total
}
