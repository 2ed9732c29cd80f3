package entity

import (
	"time"
)

// User owns tasks and timetable entries.
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
