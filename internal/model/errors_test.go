package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestIsActivationError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{fmt.Errorf("activate: %w", ErrUnknownAnimal), true},
		{fmt.Errorf("activate: %w", ErrNoFactsAvailable), true},
		{ErrPlaceholderMissing, false},
		{ErrDuplicateAnimal, false},
		{errors.New("boom"), false},
		{nil, false},
	}

	for _, test := range tests {
		result := IsActivationError(test.err)
		if result != test.expected {
			t.Errorf("IsActivationError(%v) = %v, expected %v", test.err, result, test.expected)
		}
	}
}

func TestNewSelectedFact(t *testing.T) {
	fact := NewSelectedFact("lion", 1, "Lions nap a lot.")

	if fact.Animal != "lion" || fact.Index != 1 || fact.Text != "Lions nap a lot." {
		t.Errorf("Unexpected fact: %+v", fact)
	}

	id, err := uuid.Parse(fact.ID)
	if err != nil {
		t.Fatalf("Expected a valid UUID, got '%s': %v", fact.ID, err)
	}
	if id.Version() != 7 {
		t.Errorf("Expected UUID version 7, got %d", id.Version())
	}

	other := NewSelectedFact("lion", 1, "Lions nap a lot.")
	if other.ID == fact.ID {
		t.Error("Expected distinct IDs for separate activations")
	}
}
