package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/repository"
)

var (
	ErrAdminRequired  = apperrors.Reason(apperrors.ErrForbidden, "Admin role required")
	ErrMemberNotFound = apperrors.Reason(apperrors.ErrNotFound, "Team member not found")
	ErrInvalidRole    = apperrors.Reason(apperrors.ErrValidation, "Role must be admin, developer, or viewer")
	// ErrOwnRole keeps the last admin from locking everyone out.
	ErrOwnRole = apperrors.Reason(apperrors.ErrValidation, "You cannot change your own role")
)

// TeamService exposes the team roster.
type TeamService interface {
	Members(ctx context.Context) ([]model.TeamMember, error)
	// ChangeRole sets a member's role on behalf of actor, who must be an admin.
	// The member's current session keeps its old role until it expires.
	ChangeRole(ctx context.Context, actor model.User, memberID string, role model.Role) (model.TeamMember, error)
}

type teamService struct {
	accountRepo repository.AccountRepository
}

// NewTeamService creates a new team service.
func NewTeamService(accountRepo repository.AccountRepository) TeamService {
	return &teamService{accountRepo: accountRepo}
}

func (s *teamService) Members(ctx context.Context) ([]model.TeamMember, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	members := make([]model.TeamMember, 0, len(accounts))
	for i := range accounts {
		members = append(members, accounts[i].Member())
	}
	return members, nil
}

func (s *teamService) ChangeRole(ctx context.Context, actor model.User, memberID string, role model.Role) (model.TeamMember, error) {
	if actor.Role != model.RoleAdmin {
		return model.TeamMember{}, ErrAdminRequired
	}
	if !role.Valid() {
		return model.TeamMember{}, ErrInvalidRole
	}
	if memberID == actor.ID {
		return model.TeamMember{}, ErrOwnRole
	}

	account, err := s.accountRepo.UpdateRole(ctx, memberID, role)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return model.TeamMember{}, ErrMemberNotFound
	}
	if err != nil {
		return model.TeamMember{}, fmt.Errorf("update role: %w", err)
	}
	return account.Member(), nil
}
