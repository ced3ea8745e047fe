package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFreeCredits is granted to every new account at sign-up.
const DefaultFreeCredits = 1

type Account struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	CreditBalance int       `json:"interpretation_credits"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
