// Package history is the client-side bounded cache of past interpretations.
// It keeps the most recent entries newest-first in a single JSON file and
// evicts the oldest beyond capacity.
package history

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Capacity is the maximum number of dreams kept.
const Capacity = 5

// Dream is one persisted interpretation result. Immutable once appended.
type Dream struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Interpretation string    `json:"interpretation"`
	Date           time.Time `json:"date"`
	Language       string    `json:"language"`
}

// NewDream builds a record for a just-received interpretation. The id is
// the creation timestamp in nanoseconds, so ids sort in generation order.
func NewDream(content, interpretation, language string) Dream {
	now := time.Now()
	return Dream{
		ID:             strconv.FormatInt(now.UnixNano(), 10),
		Content:        content,
		Interpretation: interpretation,
		Date:           now,
		Language:       language,
	}
}

// Store persists the dream history. A single instance per process; not safe
// for concurrent writers.
type Store struct {
	path string
}

// DefaultPath returns the history file location under the user home.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return home + string(os.PathSeparator) + ".mindverse_dreams.json"
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Append prepends the dream, truncates to Capacity and persists. Write
// failures surface so the caller can flag the save as failed.
func (s *Store) Append(d Dream) ([]Dream, error) {
	dreams := append([]Dream{d}, s.List()...)
	if len(dreams) > Capacity {
		dreams = dreams[:Capacity]
	}
	if err := s.save(dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

// List returns the persisted dreams newest-first. Missing or unreadable
// state degrades to an empty history, never an error.
func (s *Store) List() []Dream {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var dreams []Dream
	if err := json.Unmarshal(b, &dreams); err != nil {
		return nil
	}
	return dreams
}

// Remove filters out the dream with the given id and persists the result.
// Removing an absent id is a no-op.
func (s *Store) Remove(id string) ([]Dream, error) {
	dreams := s.List()
	kept := dreams[:0]
	for _, d := range dreams {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if err := s.save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) save(dreams []Dream) error {
	if dreams == nil {
		dreams = []Dream{}
	}
	b, err := json.Marshal(dreams)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0600)
}
