package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"devboost/internal/config"
	"devboost/internal/model"
	"devboost/internal/repository"
)

// AccountService manages the account roster.
type AccountService interface {
	// SeedAccounts creates the given users, skipping emails that already exist.
	// It returns the number of accounts created.
	SeedAccounts(ctx context.Context, users []config.SeedUser) (int, error)
}

type accountService struct {
	repo repository.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) SeedAccounts(ctx context.Context, users []config.SeedUser) (int, error) {
	created := 0
	for _, u := range users {
		role := model.Role(u.Role)
		if role == "" {
			role = model.RoleDeveloper
		}
		if !role.Valid() {
			return created, fmt.Errorf("seed %s: unknown role %q", u.Email, u.Role)
		}
		status := model.MemberStatus(u.Status)
		if status == "" {
			status = model.MemberActive
		}
		if !status.Valid() {
			return created, fmt.Errorf("seed %s: unknown status %q", u.Email, u.Status)
		}
		if u.Email == "" || u.Password == "" {
			return created, fmt.Errorf("seed user %q: email and password are required", u.Name)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		err = s.repo.Create(ctx, &model.Account{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: string(hash),
			Role:         role,
			Status:       status,
			CreatedAt:    u.JoinedAt,
		})
		if errors.Is(err, repository.ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("create account %s: %w", u.Email, err)
		}
		created++
	}
	return created, nil
}
