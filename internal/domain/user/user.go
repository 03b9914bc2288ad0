package user

import (
	"fmt"
	"time"
)

// User is the owner of tickets. Uniqueness of email, if desired, is the
// backing store's responsibility.
type User struct {
	id        uint
	email     string
	name      string
	createdAt time.Time
}

func NewUser(email, name string) *User {
	return &User{
		email:     email,
		name:      name,
		createdAt: time.Now(),
	}
}

func ReconstructUser(id uint, email, name string, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		createdAt: createdAt,
	}
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
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
