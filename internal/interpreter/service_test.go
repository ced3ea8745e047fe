package interpreter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/mindverse/mindverse/internal/ledger"
)

// In-memory ledger with the atomic conditional decrement contract.
type mockLedger struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
	debits   int
}

func newMockLedger(id uuid.UUID, balance int) *mockLedger {
	return &mockLedger{balances: map[uuid.UUID]int{id: balance}}
}

func (m *mockLedger) Balance(_ context.Context, id uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[id]
	if !ok {
		return 0, ledger.ErrAccountNotFound
	}
	return b, nil
}

func (m *mockLedger) Debit(_ context.Context, id uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[id]
	if !ok {
		return 0, ledger.ErrAccountNotFound
	}
	if b < 1 {
		return 0, ledger.ErrInsufficientCredit
	}
	m.balances[id] = b - 1
	m.debits++
	return b - 1, nil
}

func (m *mockLedger) balance(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[id]
}

// stubProvider records the last request and returns a fixed response.
type stubProvider struct {
	lastReq CompletionRequest
	text    string
	err     error
	calls   int
}

func (p *stubProvider) Complete(_ context.Context, req CompletionRequest) (string, error) {
	p.lastReq = req
	p.calls++
	return p.text, p.err
}

const flyingDream = "I was flying over mountains"

func TestInterpretSuccessDebitsOnce(t *testing.T) {
	id := uuid.New()
	led := newMockLedger(id, 3)
	prov := &stubProvider{text: "You seek freedom."}
	svc := NewService(led, prov, nil)

	res, err := svc.Interpret(context.Background(), id, flyingDream, "en")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if res.Interpretation != "You seek freedom." {
		t.Errorf("interpretation = %q", res.Interpretation)
	}
	if res.Credits != 2 {
		t.Errorf("credits = %d, want 2 (post-debit balance)", res.Credits)
	}
	if led.balance(id) != 2 {
		t.Errorf("ledger balance = %d, want 2", led.balance(id))
	}
	if led.debits != 1 {
		t.Errorf("debits = %d, want exactly 1", led.debits)
	}
}

func TestInterpretPromptComposition(t *testing.T) {
	id := uuid.New()
	prov := &stubProvider{text: "ok"}
	svc := NewService(newMockLedger(id, 1), prov, nil)

	if _, err := svc.Interpret(context.Background(), id, flyingDream, "tr"); err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if prov.lastReq.System == "" {
		t.Error("system instruction missing")
	}
	if !strings.Contains(prov.lastReq.User, flyingDream) {
		t.Errorf("user instruction does not embed the dream text: %q", prov.lastReq.User)
	}
	if !strings.Contains(prov.lastReq.User, "Türkçe") {
		t.Errorf("user instruction not in the requested language: %q", prov.lastReq.User)
	}
	if prov.lastReq.MaxTokens != 500 {
		t.Errorf("max tokens = %d, want 500", prov.lastReq.MaxTokens)
	}
	if prov.lastReq.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", prov.lastReq.Temperature)
	}
}

func TestInterpretShortTextRejectedBeforeAnything(t *testing.T) {
	id := uuid.New()
	led := newMockLedger(id, 1)
	prov := &stubProvider{text: "ok"}
	svc := NewService(led, prov, nil)

	_, err := svc.Interpret(context.Background(), id, "  short  ", "en")
	if !errors.Is(err, ErrDreamTooShort) {
		t.Fatalf("got %v, want ErrDreamTooShort", err)
	}
	if prov.calls != 0 {
		t.Error("provider called for invalid input")
	}
	if led.balance(id) != 1 {
		t.Error("balance changed for invalid input")
	}
}

func TestInterpretNoCreditNoCall(t *testing.T) {
	id := uuid.New()
	prov := &stubProvider{text: "ok"}
	svc := NewService(newMockLedger(id, 0), prov, nil)

	_, err := svc.Interpret(context.Background(), id, flyingDream, "en")
	if !errors.Is(err, ledger.ErrInsufficientCredit) {
		t.Fatalf("got %v, want ErrInsufficientCredit", err)
	}
	if prov.calls != 0 {
		t.Error("provider called with zero balance")
	}
}

func TestInterpretProviderFailureLeavesBalance(t *testing.T) {
	id := uuid.New()
	led := newMockLedger(id, 2)
	svc := NewService(led, &stubProvider{err: errors.New("upstream 503")}, nil)

	_, err := svc.Interpret(context.Background(), id, flyingDream, "en")
	if !errors.Is(err, ErrInterpretationFailed) {
		t.Fatalf("got %v, want ErrInterpretationFailed", err)
	}
	if led.balance(id) != 2 {
		t.Errorf("balance = %d, want 2 (no debit on failure)", led.balance(id))
	}
}

func TestInterpretEmptyContentLeavesBalance(t *testing.T) {
	id := uuid.New()
	led := newMockLedger(id, 2)
	svc := NewService(led, &stubProvider{text: "   "}, nil)

	_, err := svc.Interpret(context.Background(), id, flyingDream, "en")
	if !errors.Is(err, ErrInterpretationFailed) {
		t.Fatalf("got %v, want ErrInterpretationFailed", err)
	}
	if led.balance(id) != 2 {
		t.Errorf("balance = %d, want 2", led.balance(id))
	}
}

// Account with one credit: first call succeeds and drains it, the second is
// refused before reaching the provider.
func TestInterpretSingleCreditDoubleCall(t *testing.T) {
	id := uuid.New()
	led := newMockLedger(id, 1)
	prov := &stubProvider{text: "Mountains stand for obstacles overcome."}
	svc := NewService(led, prov, nil)
	ctx := context.Background()

	res, err := svc.Interpret(ctx, id, flyingDream, "en")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if res.Interpretation == "" || res.Credits != 0 {
		t.Fatalf("first call result = %+v", res)
	}

	_, err = svc.Interpret(ctx, id, flyingDream, "en")
	if !errors.Is(err, ledger.ErrInsufficientCredit) {
		t.Fatalf("second call: got %v, want ErrInsufficientCredit", err)
	}
	if prov.calls != 1 {
		t.Errorf("provider calls = %d, want 1", prov.calls)
	}
}
