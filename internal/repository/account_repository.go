package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"devboost/internal/model"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when creating an account whose email exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines account persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	// List returns every account, oldest first.
	List(ctx context.Context) ([]model.Account, error)
	UpdateRole(ctx context.Context, id string, role model.Role) (*model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a GORM-backed account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	account.Email = normalizeEmail(account.Email)
	err := r.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

// FindByEmail finds an account by email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns all accounts ordered by join date.
func (r *accountRepository) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Order("created_at ASC, email ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateRole sets the role of the account with the given id.
func (r *accountRepository) UpdateRole(ctx context.Context, id string, role model.Role) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").Where("id = ?", id).First(&account).Error; err != nil {
			return err
		}
		return tx.Model(&account).Update("role", role).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// memoryAccountRepository keeps accounts for the lifetime of the process.
type memoryAccountRepository struct {
	mu      sync.RWMutex
	byEmail map[string]model.Account
}

// NewMemoryAccountRepository creates an in-memory account repository.
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{byEmail: make(map[string]model.Account)}
}

func (r *memoryAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := account.BeforeCreate(nil); err != nil {
		return err
	}
	account.Email = normalizeEmail(account.Email)
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	account.UpdatedAt = account.CreatedAt

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[account.Email]; exists {
		return ErrDuplicateEmail
	}
	r.byEmail[account.Email] = *account
	return nil
}

func (r *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

func (r *memoryAccountRepository) List(ctx context.Context) ([]model.Account, error) {
	r.mu.RLock()
	accounts := make([]model.Account, 0, len(r.byEmail))
	for _, account := range r.byEmail {
		accounts = append(accounts, account)
	}
	r.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
		}
		return accounts[i].Email < accounts[j].Email
	})
	return accounts, nil
}

func (r *memoryAccountRepository) UpdateRole(ctx context.Context, id string, role model.Role) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, account := range r.byEmail {
		if account.ID != id {
			continue
		}
		account.Role = role
		account.UpdatedAt = time.Now()
		r.byEmail[email] = account
		return &account, nil
	}
	return nil, ErrAccountNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
