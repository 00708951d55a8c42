package model

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account allowed to manage events
type User struct {
	ID           int64  `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username" validate:"required,max=80"`
	PasswordHash string `json:"-" bson:"password_hash"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewUser creates a user with a hashed password
func NewUser(username, password string) (*User, error) {
	u := &User{
		Username:  strings.TrimSpace(username),
		CreatedAt: time.Now(),
	}
	if err := validate.Struct(u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidUser)
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored password hash
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	if u == nil || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
