package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns a generation history.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the part of a User that is safe to return to its owner.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
