package twisty

import "errors"

// Sentinel errors for the twisty package.
var (
	// Construction errors
	ErrInvalidSize = errors.New("twisty: cube size must be at least 2")

	// Parsing errors
	ErrInvalidNotation = errors.New("twisty: invalid move notation")

	// Scramble errors
	ErrInvalidLength = errors.New("twisty: scramble length must not be negative")
)
