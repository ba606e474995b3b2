package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate against the booking API.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, username Username, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
