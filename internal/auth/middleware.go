package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mindverse/mindverse/internal/api"
)

type contextKey string

const ctxAccountIDKey contextKey = "account_id"

// RequireAuth verifies the Bearer token on the request and puts the resolved
// account id into the request context. Missing credentials map to 401,
// invalid or expired ones to 403.
func RequireAuth(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearer(r)
			if raw == "" {
				api.WriteError(w, http.StatusUnauthorized, api.KindUnauthorized, "access denied")
				return
			}
			accountID, err := svc.ValidateToken(r.Context(), raw)
			if err != nil {
				api.WriteError(w, http.StatusForbidden, api.KindForbidden, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxAccountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromCtx returns the authenticated account id, or uuid.Nil.
func AccountIDFromCtx(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ctxAccountIDKey).(uuid.UUID)
	return id
}

// WithAccountID returns a context carrying the given account id.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxAccountIDKey, id)
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
