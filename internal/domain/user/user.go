package user

import (
	"fmt"
	"time"

	"github.com/Menatic/IT-Support/internal/shared/authorization"
)

type User struct {
	id           uint
	username     string
	passwordHash string
	email        string
	name         string
	role         authorization.UserRole
	department   string
	createdAt    time.Time
}

func NewUser(username, passwordHash, email, name string, role authorization.UserRole, department string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 64 {
		return nil, fmt.Errorf("username exceeds maximum length of 64 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		name:         name,
		role:         role,
		department:   department,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	email string,
	name string,
	role authorization.UserRole,
	department string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		name:         name,
		role:         role,
		department:   department,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Department() string {
	return u.department
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Actor() authorization.Actor {
	return authorization.Actor{UserID: u.id, Role: u.role}
}
