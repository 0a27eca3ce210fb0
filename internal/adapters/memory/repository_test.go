package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/household_finance/internal/adapters/memory"
	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPersonRepository()
	ted := domain.NewPerson("Ted", "Neward", 45)
	charlotte := domain.NewPerson("Charlotte", "Neward", 45)

	require.NoError(t, repo.SavePerson(ctx, ted))
	require.NoError(t, repo.SavePerson(ctx, charlotte))

	err := repo.SavePerson(ctx, ted)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	found, err := repo.FindPersonByID(ctx, ted.ID().String())
	require.NoError(t, err)
	assert.Same(t, ted, found)

	_, err = repo.FindPersonByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repo.ListPersons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Person{ted, charlotte}, all)
}

func TestFamilyRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFamilyRepository()
	ted := domain.NewPerson("Ted", "Neward", 45)
	charlotte := domain.NewPerson("Charlotte", "Neward", 45)
	family := domain.NewFamily(ted, charlotte)

	require.NoError(t, repo.SaveFamily(ctx, family))
	assert.ErrorIs(t, repo.SaveFamily(ctx, family), apperrors.ErrDuplicate)

	found, err := repo.FindFamilyByID(ctx, family.ID().String())
	require.NoError(t, err)
	assert.Same(t, family, found)

	_, err = repo.FindFamilyByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	byMember, err := repo.FindFamilyByMember(ctx, charlotte.ID().String())
	require.NoError(t, err)
	assert.Same(t, family, byMember)

	// children added after registration are visible
	child := domain.NewPersonWithFirstName("Kid", 1)
	require.True(t, family.HaveChild(child))
	byMember, err = repo.FindFamilyByMember(ctx, child.ID().String())
	require.NoError(t, err)
	assert.Same(t, family, byMember)

	_, err = repo.FindFamilyByMember(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repo.ListFamilies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPersonRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPersonRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(age int) {
			defer wg.Done()
			assert.NoError(t, repo.SavePerson(ctx, domain.NewPersonWithFirstName("P", age)))
		}(i)
	}
	wg.Wait()

	all, err := repo.ListPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestNewRepositoryProvider(t *testing.T) {
	repos := memory.NewRepositoryProvider()
	assert.NotNil(t, repos.PersonRepo)
	assert.NotNil(t, repos.FamilyRepo)
}
