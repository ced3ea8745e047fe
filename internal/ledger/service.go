package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mindverse/mindverse/internal/models"
)

// ErrInsufficientCredit is returned by Debit when the balance is zero.
var ErrInsufficientCredit = errInsufficientCredit

// ErrAccountNotFound is returned when the account id resolves to nothing.
var ErrAccountNotFound = errAccountNotFound

// ErrInvalidAmount is returned by Credit for non-positive amounts.
var ErrInvalidAmount = errors.New("credit amount must be positive")

// Repo is the persistence interface behind the ledger service. Debit must be
// an atomic conditional decrement (never drives the balance negative).
type Repo interface {
	Balance(ctx context.Context, accountID uuid.UUID) (int, error)
	Debit(ctx context.Context, accountID uuid.UUID) (int, error)
	Credit(ctx context.Context, accountID uuid.UUID, amount int, entryType string) (int, error)
	Entries(ctx context.Context, accountID uuid.UUID) ([]*models.CreditEntry, error)
}

type Service interface {
	Balance(ctx context.Context, accountID uuid.UUID) (int, error)
	Debit(ctx context.Context, accountID uuid.UUID) (int, error)
	Credit(ctx context.Context, accountID uuid.UUID, amount int, entryType string) (int, error)
	Entries(ctx context.Context, accountID uuid.UUID) ([]*models.CreditEntry, error)
}

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

var _ Service = (*service)(nil)

func (s *service) Balance(ctx context.Context, accountID uuid.UUID) (int, error) {
	return s.repo.Balance(ctx, accountID)
}

func (s *service) Debit(ctx context.Context, accountID uuid.UUID) (int, error) {
	return s.repo.Debit(ctx, accountID)
}

func (s *service) Credit(ctx context.Context, accountID uuid.UUID, amount int, entryType string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return s.repo.Credit(ctx, accountID, amount, entryType)
}

func (s *service) Entries(ctx context.Context, accountID uuid.UUID) ([]*models.CreditEntry, error) {
	return s.repo.Entries(ctx, accountID)
}
