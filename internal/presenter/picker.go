package presenter

import (
	"math/rand/v2"

	"github.com/ytget/animal-facts/internal/platform"
)

// Picker selects an index uniformly from [0, n). n is always > 0.
type Picker interface {
	IntN(n int) int
}

// NewSeededPicker returns a PCG-backed picker. Equal seeds give equal sequences.
func NewSeededPicker(seed1, seed2 uint64) Picker {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewRandomPicker returns a picker seeded from crypto/rand
func NewRandomPicker() (Picker, error) {
	s1, err := platform.NewSeed()
	if err != nil {
		return nil, err
	}
	s2, err := platform.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededPicker(s1, s2), nil
}
