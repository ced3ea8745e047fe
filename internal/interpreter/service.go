// Package interpreter is the gateway between callers, the credit ledger and
// the external language-model provider. It enforces the no-credit-no-call
// policy and commits the debit only after a confirmed successful response.
package interpreter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mindverse/mindverse/internal/ledger"
)

// minDreamLength is the minimum trimmed length of a submittable dream text.
const minDreamLength = 10

const (
	maxOutputTokens = 500
	temperature     = 0.7
)

// ErrDreamTooShort is returned for dream texts below minDreamLength.
var ErrDreamTooShort = errors.New("dream text is too short")

// ErrInterpretationFailed covers provider errors, timeouts and malformed
// responses. The provider's own error text is never surfaced to callers.
var ErrInterpretationFailed = errors.New("failed to interpret dream")

// CompletionRequest is the contract with the external completion provider.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Provider is a chat-style completion provider.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Ledger is the slice of the credit ledger the gateway needs.
type Ledger interface {
	Balance(ctx context.Context, accountID uuid.UUID) (int, error)
	Debit(ctx context.Context, accountID uuid.UUID) (int, error)
}

// Result is a successful interpretation together with the post-debit balance.
type Result struct {
	Interpretation string
	Credits        int
}

type Service interface {
	Interpret(ctx context.Context, accountID uuid.UUID, dreamText, language string) (*Result, error)
}

type service struct {
	ledger   Ledger
	provider Provider
	log      *slog.Logger
}

func NewService(ledger Ledger, provider Provider, log *slog.Logger) *service {
	if log == nil {
		log = slog.Default()
	}
	return &service{ledger: ledger, provider: provider, log: log}
}

var _ Service = (*service)(nil)

// Interpret runs the credit-gated flow: validate input, check balance, call
// the provider, then debit. A debit happens only after a confirmed non-empty
// response, and no result is returned without its debit.
func (s *service) Interpret(ctx context.Context, accountID uuid.UUID, dreamText, language string) (*Result, error) {
	if len(strings.TrimSpace(dreamText)) < minDreamLength {
		return nil, ErrDreamTooShort
	}

	balance, err := s.ledger.Balance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, ledger.ErrInsufficientCredit
	}

	text, err := s.provider.Complete(ctx, CompletionRequest{
		System:      systemPrompt,
		User:        userPrompt(language, dreamText),
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		s.log.Error("completion provider call failed", "error", err)
		return nil, ErrInterpretationFailed
	}
	if strings.TrimSpace(text) == "" {
		s.log.Error("completion provider returned empty content")
		return nil, ErrInterpretationFailed
	}

	// The balance may have been spent between the check and here; the debit
	// is the authoritative conditional decrement.
	newBalance, err := s.ledger.Debit(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Result{Interpretation: text, Credits: newBalance}, nil
}
