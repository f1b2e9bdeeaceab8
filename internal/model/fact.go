package model

import (
	"github.com/google/uuid"
)

// SelectedFact is the result of one activation
type SelectedFact struct {
	ID     string // UUIDv7, used to correlate log lines
	Animal string
	Index  int // index into the animal's fact list
	Text   string
}

// NewSelectedFact creates a selected fact with a fresh ID
func NewSelectedFact(animal string, index int, text string) SelectedFact {
	return SelectedFact{
		ID:     generateFactID(),
		Animal: animal,
		Index:  index,
		Text:   text,
	}
}

// generateFactID returns a time-ordered ID, falling back to a random one
func generateFactID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
