package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindverse/mindverse/internal/models"
)

var (
	errInsufficientCredit = errors.New("insufficient interpretation credits")
	errAccountNotFound    = errors.New("account not found")
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ Repo = (*Repository)(nil)

func (r *Repository) Balance(ctx context.Context, accountID uuid.UUID) (int, error) {
	var balance int
	err := r.pool.QueryRow(ctx, `
		SELECT credit_balance FROM accounts WHERE id = $1
	`, accountID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errAccountNotFound
	}
	return balance, err
}

// Debit decrements the balance by exactly one if at least one credit remains.
// The conditional UPDATE is the atomicity guarantee: two concurrent debits of
// a one-credit account cannot both match the WHERE clause, so the balance
// never goes negative and a single credit is never spent twice.
func (r *Repository) Debit(ctx context.Context, accountID uuid.UUID) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var newBalance int
	err = tx.QueryRow(ctx, `
		UPDATE accounts SET credit_balance = credit_balance - 1, updated_at = now()
		WHERE id = $1 AND credit_balance >= 1
		RETURNING credit_balance
	`, accountID).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if scanErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists); scanErr != nil {
			return 0, scanErr
		}
		if !exists {
			return 0, errAccountNotFound
		}
		return 0, errInsufficientCredit
	}
	if err != nil {
		return 0, err
	}
	if err := insertEntry(ctx, tx, accountID, models.CreditEntryInterpretation, -1, newBalance); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit adds amount to the balance and records a ledger entry of the given
// type in the same transaction.
func (r *Repository) Credit(ctx context.Context, accountID uuid.UUID, amount int, entryType string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var newBalance int
	err = tx.QueryRow(ctx, `
		UPDATE accounts SET credit_balance = credit_balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING credit_balance
	`, accountID, amount).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	if err := insertEntry(ctx, tx, accountID, entryType, amount, newBalance); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *Repository) Entries(ctx context.Context, accountID uuid.UUID) ([]*models.CreditEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, entry_type, amount, balance_after, created_at
		FROM credit_ledger WHERE account_id = $1 ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.CreditEntry
	for rows.Next() {
		var e models.CreditEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.EntryType, &e.Amount, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func insertEntry(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, entryType string, amount, balanceAfter int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO credit_ledger (id, account_id, entry_type, amount, balance_after)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), accountID, entryType, amount, balanceAfter)
	return err
}
