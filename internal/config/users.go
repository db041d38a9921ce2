package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeedUser is one entry of the users roster.
type SeedUser struct {
	ID       string    `yaml:"id"`
	Email    string    `yaml:"email"`
	Name     string    `yaml:"name"`
	Password string    `yaml:"password"`
	Role     string    `yaml:"role"`
	// Status is "active" (default) or "invited".
	Status   string    `yaml:"status"`
	JoinedAt time.Time `yaml:"joined_at"`
}

type usersFile struct {
	Users []SeedUser `yaml:"users"`
}

// DefaultUsers is the demo roster used when no users file exists.
func DefaultUsers() []SeedUser {
	return []SeedUser{
		{ID: "1", Email: "admin@devboost.ai", Name: "Admin User", Password: "admin123", Role: "admin"},
		{ID: "2", Email: "dev@devboost.ai", Name: "Developer User", Password: "dev123", Role: "developer"},
	}
}

// LoadUsers reads the YAML roster at path. A missing file yields DefaultUsers.
func LoadUsers(path string) ([]SeedUser, error) {
	if path == "" {
		return DefaultUsers(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultUsers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var uf usersFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return uf.Users, nil
}
