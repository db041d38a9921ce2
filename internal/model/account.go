package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the stored credential record behind a User.
type Account struct {
	ID           string       `json:"id" gorm:"size:36;primaryKey"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role         `json:"role" gorm:"type:varchar(20);not null;default:'developer'"`
	Status       MemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// User projects the account to its session identity.
func (a *Account) User() User {
	return User{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// Member projects the account to its team roster entry. Accounts stored
// before the status column existed count as active.
func (a *Account) Member() TeamMember {
	status := a.Status
	if status == "" {
		status = MemberActive
	}
	return TeamMember{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Role:     a.Role,
		Status:   status,
		JoinedAt: a.CreatedAt,
	}
}
