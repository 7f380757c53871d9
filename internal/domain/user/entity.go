package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an operator account: an administrator, a cashier issuing vouchers,
// or an establishment redeeming them.
type User struct {
	id              uuid.UUID
	email           Email
	passwordHash    string
	name            string
	role            Role
	establishmentID *uuid.UUID
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewUser(email Email, passwordHash, name string, role Role, establishmentID *uuid.UUID, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if role.RequiresEstablishment() && establishmentID == nil {
		return nil, ErrEstablishmentRequired
	}

	return &User{
		id:              uuid.New(),
		email:           email,
		passwordHash:    passwordHash,
		name:            name,
		role:            role,
		establishmentID: establishmentID,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a persisted user without re-running validation.
func Reconstruct(id uuid.UUID, email Email, passwordHash, name string, role Role, establishmentID *uuid.UUID, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:              id,
		email:           email,
		passwordHash:    passwordHash,
		name:            name,
		role:            role,
		establishmentID: establishmentID,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Name() string                { return u.name }
func (u *User) Role() Role                  { return u.role }
func (u *User) EstablishmentID() *uuid.UUID { return u.establishmentID }
func (u *User) IsActive() bool              { return u.isActive }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
