package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a club event members can join.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// Date is the raw date string as submitted; Happens is its parsed form
	// and is what listings filter and sort on.
	Date      string    `json:"date"`
	Happens   time.Time `json:"happens"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}
