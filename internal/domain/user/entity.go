package user

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity collaborator's profile record. Role flags are
// mutated only through admin promotion; account lifecycle (signup, password
// reset) belongs to the collaborator.
type User struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	isAdmin      bool
	isWorker     bool
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name, passwordHash string) (*User, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     true,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, name, passwordHash string, isAdmin, isWorker, isActive bool, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		isWorker:     isWorker,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Name() string          { return u.name }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsAdmin() bool         { return u.isAdmin }
func (u *User) IsWorker() bool        { return u.isWorker }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
