package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindverse/mindverse/internal/models"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ Accounts = (*Repository)(nil)

// Create inserts a new account with its free-credit grant and records the
// grant in the credit ledger, all in one transaction.
func (r *Repository) Create(ctx context.Context, email, passwordHash string, initialCredits int) (*models.Account, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	a := models.Account{ID: uuid.New(), Email: email, PasswordHash: passwordHash, CreditBalance: initialCredits}
	row := tx.QueryRow(ctx, `
		INSERT INTO accounts (id, email, password_hash, credit_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, a.ID, email, passwordHash, initialCredits)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO credit_ledger (id, account_id, entry_type, amount, balance_after)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), a.ID, models.CreditEntrySignupGrant, initialCredits, initialCredits)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEmail returns the account for login. Returns nil, nil if not found.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, credit_balance, created_at, updated_at
		FROM accounts WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreditBalance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByID returns the account or nil, nil if not found.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, credit_balance, created_at, updated_at
		FROM accounts WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreditBalance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
