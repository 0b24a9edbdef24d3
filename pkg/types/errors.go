package types

import "errors"

// Domain errors shared across the finder, parser and searcher
var (
	// Search errors
	ErrEmptyPattern   = errors.New("search pattern cannot be empty")
	ErrInvalidPattern = errors.New("invalid search pattern")

	// Outline errors
	ErrUnsupportedLanguage = errors.New("no outliner for language")
	ErrInvalidMatch        = errors.New("match line must be >= 1")
)
