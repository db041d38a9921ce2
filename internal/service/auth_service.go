package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	apperrors "devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = apperrors.Reason(apperrors.ErrUnauthenticated, "Invalid credentials")
	// ErrUserAlreadyExists is returned when signing up with a registered email.
	ErrUserAlreadyExists = apperrors.Reason(apperrors.ErrConflict, "Email already registered")
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("devboost-dummy-password"), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
	return hash
})

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Signup(ctx context.Context, name, email, password string) (model.User, error)
}

type authService struct {
	accountRepo repository.AccountRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

// Login checks credentials and returns the account's session identity.
func (s *authService) Login(ctx context.Context, email, password string) (model.User, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	// Invitations are listed on the team page but cannot sign in until accepted.
	if account.Status == model.MemberInvited {
		return model.User{}, ErrInvalidCredentials
	}
	return account.User(), nil
}

// Signup registers a developer account with a hashed password.
func (s *authService) Signup(ctx context.Context, name, email, password string) (model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleDeveloper,
		Status:       model.MemberActive,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.User{}, ErrUserAlreadyExists
		}
		return model.User{}, fmt.Errorf("create account: %w", err)
	}
	return account.User(), nil
}
