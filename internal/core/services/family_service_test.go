package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/household_finance/internal/adapters/memory"
	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/core/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock FamilyRepository ---
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) SaveFamily(ctx context.Context, family *domain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

func (m *MockFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}

func (m *MockFamilyRepository) FindFamilyByMember(ctx context.Context, personID string) (*domain.Family, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}

func (m *MockFamilyRepository) ListFamilies(ctx context.Context) ([]*domain.Family, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Family), args.Error(1)
}

// --- Test Suite ---
type FamilyServiceTestSuite struct {
	suite.Suite
	personRepo *memory.PersonRepository
	familyRepo *memory.FamilyRepository
	logs       *bytes.Buffer
	service    portssvc.FamilySvcFacade
}

func (suite *FamilyServiceTestSuite) SetupTest() {
	suite.personRepo = memory.NewPersonRepository()
	suite.familyRepo = memory.NewFamilyRepository()
	suite.logs = new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(suite.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.service = services.NewFamilyService(suite.familyRepo, suite.personRepo, "", services.WithLogger(logger))
}

func (suite *FamilyServiceTestSuite) register(p *domain.Person) *domain.Person {
	suite.Require().NoError(suite.personRepo.SavePerson(context.Background(), p))
	return p
}

func (suite *FamilyServiceTestSuite) createFamily(s1, s2 *domain.Person) *domain.Family {
	family, err := suite.service.CreateFamily(context.Background(), dto.CreateFamilyRequest{
		Spouse1ID: s1.ID().String(),
		Spouse2ID: s2.ID().String(),
	})
	suite.Require().NoError(err)
	return family
}

// --- Test Cases ---

func (suite *FamilyServiceTestSuite) TestCreateFamily_Success() {
	ted := suite.register(domain.NewPerson("Ted", "Neward", 45))
	charlotte := suite.register(domain.NewPerson("Charlotte", "Neward", 45))

	family := suite.createFamily(ted, charlotte)

	suite.Same(charlotte, ted.Spouse())
	suite.Same(ted, charlotte.Spouse())
	suite.Len(family.Members(), 2)

	found, err := suite.service.GetFamilyByID(context.Background(), family.ID().String())
	suite.Require().NoError(err)
	suite.Same(family, found)
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_UnderageLinkIsLogged() {
	adult := suite.register(domain.NewPerson("Ann", "Lee", 30))
	minor := suite.register(domain.NewPerson("Bo", "Lee", 17))

	family := suite.createFamily(adult, minor)

	suite.Len(family.Members(), 2)
	suite.Nil(minor.Spouse())
	suite.Contains(suite.logs.String(), "Spouses not linked to each other")
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_Validation() {
	ctx := context.Background()
	id := uuid.NewString()

	_, err := suite.service.CreateFamily(ctx, dto.CreateFamilyRequest{Spouse1ID: id, Spouse2ID: id})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateFamily(ctx, dto.CreateFamilyRequest{Spouse1ID: "not-a-uuid", Spouse2ID: id})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_UnknownSpouse() {
	ted := suite.register(domain.NewPerson("Ted", "Neward", 45))

	_, err := suite.service.CreateFamily(context.Background(), dto.CreateFamilyRequest{
		Spouse1ID: ted.ID().String(),
		Spouse2ID: uuid.NewString(),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "spouse2")
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_SpouseAlreadyInFamily() {
	ted := suite.register(domain.NewPerson("Ted", "Neward", 45))
	charlotte := suite.register(domain.NewPerson("Charlotte", "Neward", 45))
	other := suite.register(domain.NewPerson("Other", "Person", 45))
	suite.createFamily(ted, charlotte)

	_, err := suite.service.CreateFamily(context.Background(), dto.CreateFamilyRequest{
		Spouse1ID: other.ID().String(),
		Spouse2ID: ted.ID().String(),
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(other.Spouse())
}

func (suite *FamilyServiceTestSuite) TestHaveChild() {
	tests := []struct {
		name      string
		age1      int
		age2      int
		wantChild bool
	}{
		{name: "both twenty", age1: 20, age2: 20, wantChild: false},
		{name: "one twenty-two", age1: 20, age2: 22, wantChild: true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ctx := context.Background()
			family := suite.createFamily(
				suite.register(domain.NewPerson("A", "X", tt.age1)),
				suite.register(domain.NewPerson("B", "X", tt.age2)),
			)
			child := suite.register(domain.NewPersonWithFirstName("Kid", 0))

			ok, err := suite.service.HaveChild(ctx, family.ID().String(), child.ID().String())

			suite.Require().NoError(err)
			suite.Equal(tt.wantChild, ok)
			if tt.wantChild {
				suite.Len(family.Members(), 3)
			} else {
				suite.Len(family.Members(), 2)
				suite.Contains(suite.logs.String(), "Child not permitted")
			}
		})
	}
}

func (suite *FamilyServiceTestSuite) TestHaveChild_ChildAlreadyInFamily() {
	ctx := context.Background()
	family := suite.createFamily(
		suite.register(domain.NewPerson("A", "X", 30)),
		suite.register(domain.NewPerson("B", "X", 30)),
	)
	child := suite.register(domain.NewPersonWithFirstName("Kid", 0))

	ok, err := suite.service.HaveChild(ctx, family.ID().String(), child.ID().String())
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.service.HaveChild(ctx, family.ID().String(), child.ID().String())
	suite.False(ok)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Len(family.Members(), 3)
}

func (suite *FamilyServiceTestSuite) TestHaveChild_UnknownFamily() {
	ok, err := suite.service.HaveChild(context.Background(), uuid.NewString(), uuid.NewString())

	suite.False(ok)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FamilyServiceTestSuite) TestGetHouseholdIncome() {
	ctx := context.Background()
	employed := suite.register(domain.NewPerson("Ted", "Neward", 45))
	employed.SetJob(domain.NewJob("Guest Lecturer", domain.Hourly{Rate: 10.0}))
	unemployed := suite.register(domain.NewPerson("Charlotte", "Neward", 45))
	family := suite.createFamily(employed, unemployed)

	income, err := suite.service.GetHouseholdIncome(ctx, family.ID().String(), "")
	suite.Require().NoError(err)
	suite.Equal("USD", income.CurrencyCode)
	suite.True(decimal.NewFromInt(int64(employed.Job().CalculateIncome(2000))).Equal(income.Amount))
	suite.Equal("$20000", income.Formatted)
	suite.Equal(1, income.EarningMembers)

	income, err = suite.service.GetHouseholdIncome(ctx, family.ID().String(), "gbp")
	suite.Require().NoError(err)
	suite.Equal("GBP", income.CurrencyCode)
	suite.True(decimal.NewFromInt(10000).Equal(income.Amount))
	suite.Equal("£10000", income.Formatted)
}

func (suite *FamilyServiceTestSuite) TestGetHouseholdIncome_UnknownCurrency() {
	family := suite.createFamily(
		suite.register(domain.NewPerson("A", "X", 30)),
		suite.register(domain.NewPerson("B", "X", 30)),
	)

	_, err := suite.service.GetHouseholdIncome(context.Background(), family.ID().String(), "JPY")

	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *FamilyServiceTestSuite) TestReportingCurrencyDefault() {
	svc := services.NewFamilyService(suite.familyRepo, suite.personRepo, "EUR")
	family := suite.createFamily(
		suite.register(domain.NewPerson("A", "X", 30)),
		suite.register(domain.NewPerson("B", "X", 30)),
	)
	family.Members()[0].SetJob(domain.NewJob("Engineer", domain.Salary{YearlyAmount: 1000}))

	income, err := svc.GetHouseholdIncome(context.Background(), family.ID().String(), "")

	suite.Require().NoError(err)
	suite.Equal("EUR", income.CurrencyCode)
	suite.True(decimal.NewFromInt(1500).Equal(income.Amount))
}

// --- Run Test Suite ---
func TestFamilyService(t *testing.T) {
	suite.Run(t, new(FamilyServiceTestSuite))
}

func TestCreateFamily_MembershipLookupError(t *testing.T) {
	ctx := context.Background()
	personRepo := memory.NewPersonRepository()
	familyRepo := new(MockFamilyRepository)
	a := domain.NewPerson("A", "X", 30)
	b := domain.NewPerson("B", "X", 30)
	require.NoError(t, personRepo.SavePerson(ctx, a))
	require.NoError(t, personRepo.SavePerson(ctx, b))
	familyRepo.On("FindFamilyByMember", ctx, a.ID().String()).Return(nil, assert.AnError).Once()

	svc := services.NewFamilyService(familyRepo, personRepo, "USD")
	_, err := svc.CreateFamily(ctx, dto.CreateFamilyRequest{Spouse1ID: a.ID().String(), Spouse2ID: b.ID().String()})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	familyRepo.AssertNotCalled(t, "SaveFamily", mock.Anything, mock.Anything)
	familyRepo.AssertExpectations(t)
}
