package models

import (
	"time"

	"github.com/google/uuid"
)

// Credit ledger entry_type enums. One row is appended per balance mutation.
const (
	CreditEntrySignupGrant       = "signup_grant"
	CreditEntrySubscriptionGrant = "subscription_grant"
	CreditEntryInterpretation    = "interpretation"
)

type CreditEntry struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	EntryType    string    `json:"entry_type"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
