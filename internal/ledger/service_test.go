package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/mindverse/mindverse/internal/models"
)

// mockRepo implements Repo with the same atomicity contract as the postgres
// repository: Debit is a conditional decrement that cannot go negative.
type mockRepo struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
	entries  []*models.CreditEntry
}

func newMockRepo() *mockRepo {
	return &mockRepo{balances: make(map[uuid.UUID]int)}
}

func (m *mockRepo) Balance(_ context.Context, id uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[id]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return b, nil
}

func (m *mockRepo) Debit(_ context.Context, id uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[id]
	if !ok {
		return 0, ErrAccountNotFound
	}
	if b < 1 {
		return 0, ErrInsufficientCredit
	}
	b--
	m.balances[id] = b
	m.entries = append(m.entries, &models.CreditEntry{
		ID: uuid.New(), AccountID: id,
		EntryType: models.CreditEntryInterpretation, Amount: -1, BalanceAfter: b,
	})
	return b, nil
}

func (m *mockRepo) Credit(_ context.Context, id uuid.UUID, amount int, entryType string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[id]
	if !ok {
		return 0, ErrAccountNotFound
	}
	b += amount
	m.balances[id] = b
	m.entries = append(m.entries, &models.CreditEntry{
		ID: uuid.New(), AccountID: id,
		EntryType: entryType, Amount: amount, BalanceAfter: b,
	})
	return b, nil
}

func (m *mockRepo) Entries(_ context.Context, id uuid.UUID) ([]*models.CreditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.CreditEntry
	for _, e := range m.entries {
		if e.AccountID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) balance(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[id]
}

func TestDebitAtZeroBalance(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.balances[id] = 0
	svc := NewService(repo)

	_, err := svc.Debit(context.Background(), id)
	if !errors.Is(err, ErrInsufficientCredit) {
		t.Fatalf("got %v, want ErrInsufficientCredit", err)
	}
	if repo.balance(id) != 0 {
		t.Errorf("balance changed to %d, want 0", repo.balance(id))
	}
}

func TestDebitUnknownAccount(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Debit(context.Background(), uuid.New()); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("got %v, want ErrAccountNotFound", err)
	}
}

// Concurrent debits against balance B with C > B callers: exactly B succeed,
// C-B fail with ErrInsufficientCredit, and the final balance is zero.
func TestConcurrentDebits(t *testing.T) {
	const initial = 10
	const callers = 25

	repo := newMockRepo()
	id := uuid.New()
	repo.balances[id] = initial
	svc := NewService(repo)

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Debit(context.Background(), id)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInsufficientCredit):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != initial {
		t.Errorf("successful debits = %d, want %d", ok, initial)
	}
	if insufficient != callers-initial {
		t.Errorf("insufficient errors = %d, want %d", insufficient, callers-initial)
	}
	if repo.balance(id) != 0 {
		t.Errorf("final balance = %d, want 0", repo.balance(id))
	}
}

func TestCreditValidation(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.balances[id] = 1
	svc := NewService(repo)
	ctx := context.Background()

	for _, amount := range []int{0, -5} {
		if _, err := svc.Credit(ctx, id, amount, models.CreditEntrySubscriptionGrant); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Credit(%d): got %v, want ErrInvalidAmount", amount, err)
		}
	}

	newBalance, err := svc.Credit(ctx, id, 10, models.CreditEntrySubscriptionGrant)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if newBalance != 11 {
		t.Errorf("new balance = %d, want 11", newBalance)
	}

	entries, err := svc.Entries(ctx, id)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].EntryType != models.CreditEntrySubscriptionGrant || entries[0].BalanceAfter != 11 {
		t.Errorf("entry = %+v", entries[0])
	}
}
