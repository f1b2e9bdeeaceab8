package model

import "errors"

// Lookup and activation errors
var (
	// ErrUnknownAnimal means an activation referenced a name absent from the dataset
	ErrUnknownAnimal = errors.New("unknown animal")

	// ErrNoFactsAvailable means the animal exists but has zero facts
	ErrNoFactsAvailable = errors.New("no facts available")

	// ErrPlaceholderMissing means the display surface has no fact placeholder
	ErrPlaceholderMissing = errors.New("fact placeholder not found")
)

// Dataset construction errors
var (
	// ErrDuplicateAnimal means two entries share the same name
	ErrDuplicateAnimal = errors.New("duplicate animal")

	// ErrInvalidEntry means an entry is malformed (empty name, image, or missing facts)
	ErrInvalidEntry = errors.New("invalid animal entry")
)

// IsActivationError reports whether err is one of the per-activation data
// errors. Such errors never poison the presenter; the next activation may succeed.
func IsActivationError(err error) bool {
	return errors.Is(err, ErrUnknownAnimal) || errors.Is(err, ErrNoFactsAvailable)
}
