// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and provides ANSI escape code
// functions for consistent styling across the CLI presentation layer.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoneTheme disables all styling. Selected when colors are suppressed
	// via configuration or the NO_COLOR environment variable.
	NoneTheme = Theme{Name: "none"}
)

var (
	currentMu    sync.RWMutex
	currentTheme = DarkTheme
	themeOnce    sync.Once
)

// GetCurrentTheme returns the active theme. On first call it honors the
// NO_COLOR convention (https://no-color.org): any non-empty NO_COLOR value
// selects NoneTheme.
func GetCurrentTheme() Theme {
	themeOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			SetTheme(NoneTheme)
		}
	})
	currentMu.RLock()
	defer currentMu.RUnlock()
	return currentTheme
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentTheme = t
}

// DisableColors switches to the styling-free theme. Used when the output is
// not a terminal or the user passed -no-color.
func DisableColors() {
	SetTheme(NoneTheme)
}
