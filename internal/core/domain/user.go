package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidPassword = errors.New("invalid password")
var ErrInvalidInput = errors.New("invalid input")

// User models a registered member of the site.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	LowerLast    string    `json:"-"` // always lowercase(LastName), kept for roster sorting
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	EventIDs     []string  `json:"events,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
