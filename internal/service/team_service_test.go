package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/repository"
)

var (
	adminUser  = model.User{ID: "1", Email: "admin@devboost.ai", Name: "Admin User", Role: model.RoleAdmin}
	viewerUser = model.User{ID: "5", Email: "carol@devboost.ai", Name: "Carol Davis", Role: model.RoleViewer}
)

func TestTeamService_Members(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := new(MockAccountRepository)
	repo.On("List", ctx).Return([]model.Account{
		{ID: "3", Email: "alice@devboost.ai", Name: "Alice Chen", Role: model.RoleDeveloper, CreatedAt: joined, PasswordHash: "secret"},
		{ID: "6", Email: "david@devboost.ai", Name: "David Lee", Role: model.RoleDeveloper, Status: model.MemberInvited, CreatedAt: joined},
	}, nil)

	members, err := NewTeamService(repo).Members(ctx)

	require.NoError(t, err)
	assert.Equal(t, []model.TeamMember{
		{ID: "3", Name: "Alice Chen", Email: "alice@devboost.ai", Role: model.RoleDeveloper, Status: model.MemberActive, JoinedAt: joined},
		{ID: "6", Name: "David Lee", Email: "david@devboost.ai", Role: model.RoleDeveloper, Status: model.MemberInvited, JoinedAt: joined},
	}, members)
	repo.AssertExpectations(t)
}

func TestTeamService_MembersStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("List", ctx).Return(nil, errors.New("connection reset"))

	_, err := NewTeamService(repo).Members(ctx)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnexpected, apperrors.MapErrorToHTTP(err, "x").Code)
}

func TestTeamService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin changes another member", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("UpdateRole", ctx, "5", model.RoleDeveloper).
			Return(&model.Account{ID: "5", Email: "carol@devboost.ai", Name: "Carol Davis", Role: model.RoleDeveloper}, nil)

		member, err := NewTeamService(repo).ChangeRole(ctx, adminUser, "5", model.RoleDeveloper)

		require.NoError(t, err)
		assert.Equal(t, model.RoleDeveloper, member.Role)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		actor   model.User
		id      string
		role    model.Role
		wantErr error
	}{
		{"non-admin is forbidden", viewerUser, "3", model.RoleAdmin, ErrAdminRequired},
		{"developer is forbidden", model.User{ID: "2", Role: model.RoleDeveloper}, "3", model.RoleViewer, ErrAdminRequired},
		{"unknown role", adminUser, "3", "owner", ErrInvalidRole},
		{"own role", adminUser, "1", model.RoleViewer, ErrOwnRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAccountRepository)

			_, err := NewTeamService(repo).ChangeRole(ctx, tt.actor, tt.id, tt.role)

			assert.Equal(t, tt.wantErr, err)
			repo.AssertNumberOfCalls(t, "UpdateRole", 0)
		})
	}

	t.Run("unknown member", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("UpdateRole", ctx, "99", model.RoleViewer).Return(nil, repository.ErrAccountNotFound)

		_, err := NewTeamService(repo).ChangeRole(ctx, adminUser, "99", model.RoleViewer)

		assert.Equal(t, ErrMemberNotFound, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
