// Package session is the client's handle on the API: it holds the bearer
// token and the last-known credit balance, refreshed from every mutating
// response so there is a single source of truth.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// APIError is a decoded error response from the backend.
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d, %s)", e.Message, e.Status, e.Kind)
}

// Profile is the account summary returned by the backend.
type Profile struct {
	Email                 string    `json:"email"`
	CreatedAt             time.Time `json:"createdAt"`
	InterpretationCredits int       `json:"interpretationCredits"`
}

type Session struct {
	baseURL string
	http    *http.Client
	token   string
	credits int
}

func New(baseURL string) *Session {
	return &Session{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 90 * time.Second},
		credits: -1,
	}
}

// SetToken installs a previously issued bearer token.
func (s *Session) SetToken(token string) { s.token = token }

// Token returns the current bearer token, empty if not signed in.
func (s *Session) Token() string { return s.token }

// Credits returns the last-known balance, -1 if never fetched.
func (s *Session) Credits() int { return s.credits }

// SignUp registers a new account.
func (s *Session) SignUp(ctx context.Context, email, password, confirmPassword string) error {
	body := map[string]string{"email": email, "password": password, "confirmPassword": confirmPassword}
	return s.do(ctx, http.MethodPost, "/api/signup", body, nil)
}

// SignIn authenticates and stores the issued token on the session.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.do(ctx, http.MethodPost, "/api/signin", body, &resp); err != nil {
		return err
	}
	s.token = resp.Token
	return nil
}

// Profile fetches the account summary and refreshes the cached balance.
func (s *Session) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.do(ctx, http.MethodGet, "/api/profile", nil, &p); err != nil {
		return nil, err
	}
	s.credits = p.InterpretationCredits
	return &p, nil
}

// Subscribe redeems a plan and returns the new balance.
func (s *Session) Subscribe(ctx context.Context, planID string) (int, error) {
	body := map[string]string{"planId": planID}
	var resp struct {
		Message string `json:"message"`
		Credits int    `json:"credits"`
	}
	if err := s.do(ctx, http.MethodPost, "/api/subscribe", body, &resp); err != nil {
		return 0, err
	}
	s.credits = resp.Credits
	return resp.Credits, nil
}

// Interpret submits a dream and returns the interpretation with the
// post-debit balance.
func (s *Session) Interpret(ctx context.Context, dreamText, language string) (string, int, error) {
	body := map[string]string{"dreamText": dreamText, "language": language}
	var resp struct {
		Interpretation string `json:"interpretation"`
		Credits        int    `json:"credits"`
	}
	if err := s.do(ctx, http.MethodPost, "/api/interpret", body, &resp); err != nil {
		return "", 0, err
	}
	s.credits = resp.Credits
	return resp.Interpretation, resp.Credits, nil
}

func (s *Session) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
			Kind  string `json:"kind"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Kind: apiErr.Kind, Message: apiErr.Error}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
