// Package prefs stores small client preferences, currently the theme choice.
package prefs

import (
	"os"
	"strings"
)

// DefaultTheme is used when nothing has been saved yet.
const DefaultTheme = "dark"

type Prefs struct {
	path string
}

// DefaultPath returns the preference file location under the user home.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return home + string(os.PathSeparator) + ".mindverse_theme"
}

func New(path string) *Prefs {
	if path == "" {
		path = DefaultPath()
	}
	return &Prefs{path: path}
}

// Theme returns the last-selected theme, falling back to DefaultTheme on any
// read failure.
func (p *Prefs) Theme() string {
	b, err := os.ReadFile(p.path)
	if err != nil {
		return DefaultTheme
	}
	theme := strings.TrimSpace(string(b))
	if theme == "" {
		return DefaultTheme
	}
	return theme
}

// SetTheme persists the theme choice.
func (p *Prefs) SetTheme(theme string) error {
	return os.WriteFile(p.path, []byte(theme), 0600)
}
