package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"devboost/internal/config"
	apperrors "devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/repository"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	account := &model.Account{ID: "2", Email: "dev@devboost.ai", Name: "Dev User", Role: model.RoleDeveloper, PasswordHash: hashed(t, "dev123")}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "dev@devboost.ai").Return(account, nil)

		user, err := NewAuthService(repo).Login(ctx, "dev@devboost.ai", "dev123")

		require.NoError(t, err)
		assert.Equal(t, model.User{ID: "2", Email: "dev@devboost.ai", Name: "Dev User", Role: model.RoleDeveloper}, user)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "dev@devboost.ai").Return(account, nil)

		_, err := NewAuthService(repo).Login(ctx, "dev@devboost.ai", "nope")

		assert.Equal(t, ErrInvalidCredentials, err)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("unknown email is indistinguishable", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "ghost@devboost.ai").Return(nil, repository.ErrAccountNotFound)

		_, err := NewAuthService(repo).Login(ctx, "ghost@devboost.ai", "dev123")

		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "dev@devboost.ai").Return(nil, errors.New("connection reset"))

		_, err := NewAuthService(repo).Login(ctx, "dev@devboost.ai", "dev123")

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates developer account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(a *model.Account) bool {
			return a.Email == "new@devboost.ai" && a.Name == "New Dev" && a.Role == model.RoleDeveloper &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("longenough")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Account).ID = "generated-id"
		}).Return(nil)

		user, err := NewAuthService(repo).Signup(ctx, "New Dev", "new@devboost.ai", "longenough")

		require.NoError(t, err)
		assert.Equal(t, model.User{ID: "generated-id", Email: "new@devboost.ai", Name: "New Dev", Role: model.RoleDeveloper}, user)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

		_, err := NewAuthService(repo).Signup(ctx, "Dev", "dev@devboost.ai", "longenough")

		assert.Equal(t, ErrUserAlreadyExists, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestAccountService_SeedAccounts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryAccountRepository()
	seeder := NewAccountService(repo)

	created, err := seeder.SeedAccounts(ctx, config.DefaultUsers())
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = seeder.SeedAccounts(ctx, config.DefaultUsers())
	require.NoError(t, err)
	assert.Zero(t, created, "existing emails are skipped")

	user, err := NewAuthService(repo).Login(ctx, "admin@devboost.ai", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.User{ID: "1", Email: "admin@devboost.ai", Name: "Admin User", Role: model.RoleAdmin}, user)
}

func TestAccountService_SeedAccountsRejectsBadEntries(t *testing.T) {
	seeder := NewAccountService(repository.NewMemoryAccountRepository())

	_, err := seeder.SeedAccounts(context.Background(), []config.SeedUser{{Email: "x@devboost.ai", Password: "pw", Role: "overlord"}})
	assert.ErrorContains(t, err, "unknown role")

	_, err = seeder.SeedAccounts(context.Background(), []config.SeedUser{{Email: "y@devboost.ai", Password: "pw", Status: "suspended"}})
	assert.ErrorContains(t, err, "unknown status")

	_, err = seeder.SeedAccounts(context.Background(), []config.SeedUser{{Name: "nobody"}})
	assert.ErrorContains(t, err, "required")
}

func TestAccountService_SeedKeepsStatusAndJoinDate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryAccountRepository()
	joined := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := NewAccountService(repo).SeedAccounts(ctx, []config.SeedUser{
		{ID: "6", Email: "david@devboost.ai", Name: "David Lee", Password: "david123", Role: "developer", Status: "invited", JoinedAt: joined},
	})
	require.NoError(t, err)

	account, err := repo.FindByEmail(ctx, "david@devboost.ai")
	require.NoError(t, err)
	assert.Equal(t, model.MemberInvited, account.Status)
	assert.True(t, joined.Equal(account.CreatedAt))

	_, err = NewAuthService(repo).Login(ctx, "david@devboost.ai", "david123")
	assert.Equal(t, ErrInvalidCredentials, err, "invited members cannot sign in")
}
