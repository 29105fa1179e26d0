package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid user role")
)

type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role Role, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
