package persistence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
	"github.com/budget-control/backend/internal/infra/db/dbtest"
	"github.com/budget-control/backend/internal/integration/persistence"
)

func newUser(firstName, lastName, cpf, email string) *entity.User {
	user := entity.NewUser(firstName, lastName, cpf, email)
	user.PasswordHash = "$2a$04$hash"
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	user := newUser("Ana", "Silva", "52998224725", "ana@example.com")
	user.BirthDate = day("1990-05-17")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.FirstName)
	assert.Equal(t, "$2a$04$hash", byID.PasswordHash)
	assert.Equal(t, entity.UserRoleUser, byID.Role)
	assert.Equal(t, "1990-05-17", byID.BirthDate.Format("2006-01-02"))

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerror.ErrRecordNotFound)
}

func TestUserRepository_UniqueEmailAndCPF(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("Ana", "Silva", "52998224725", "ana@example.com")))

	err := repo.Create(ctx, newUser("Bia", "Souza", "11144477735", "ana@example.com"))
	assert.ErrorIs(t, err, domainerror.ErrDuplicateRegistration)

	err = repo.Create(ctx, newUser("Bia", "Souza", "52998224725", "bia@example.com"))
	assert.ErrorIs(t, err, domainerror.ErrDuplicateRegistration)
}

func TestUserRepository_FindByIdentityAndFilter(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	ana := newUser("Ana", "Silva", "52998224725", "ana@example.com")
	bia := newUser("Bia", "Silva", "11144477735", "bia@example.com")
	bia.Role = entity.UserRoleAdmin
	require.NoError(t, repo.Create(ctx, ana))
	require.NoError(t, repo.Create(ctx, bia))

	matches, err := repo.FindByIdentity(ctx, newUser("Ana", "Silva", "52998224725", "ana@example.com"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, ana.ID, matches[0].ID)

	lastName := "Silva"
	found, err := repo.FindByFilter(ctx, adapter.UserFilter{LastName: &lastName})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	upper := "ANA"
	found, err = repo.FindByFilter(ctx, adapter.UserFilter{FirstName: &upper})
	require.NoError(t, err)
	assert.Empty(t, found)

	exact := "Ana"
	found, err = repo.FindByFilter(ctx, adapter.UserFilter{FirstName: &exact})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ana.ID, found[0].ID)

	admin := entity.UserRoleAdmin
	found, err = repo.FindByFilter(ctx, adapter.UserFilter{LastName: &lastName, Role: &admin})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bia.ID, found[0].ID)

	cpf := "52998224725"
	found, err = repo.FindByFilter(ctx, adapter.UserFilter{CPF: &cpf})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ana.ID, found[0].ID)
}

func TestUserRepository_GroupMembersUpdateAndDelete(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	user := newUser("Ana", "Silva", "52998224725", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	groupID := uuid.New()
	members, err := repo.FindByGroupID(ctx, groupID)
	require.NoError(t, err)
	assert.Empty(t, members)

	user.GroupID = &groupID
	user.FirstName = "Anna"
	require.NoError(t, repo.Update(ctx, user))

	members, err = repo.FindByGroupID(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Anna", members[0].FirstName)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerror.ErrRecordNotFound)
}
