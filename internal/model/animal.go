package model

import (
	"fmt"
	"strings"
)

// AnimalEntry represents a single animal with its image and facts
type AnimalEntry struct {
	Name  string   // unique key, also the display label
	Image string   // image path, relative to the dataset directory
	Facts []string // ordered fact list
}

// HasFacts returns true if the entry has at least one fact
func (e AnimalEntry) HasFacts() bool {
	return len(e.Facts) > 0
}

// Fact returns the fact at index i
func (e AnimalEntry) Fact(i int) (string, error) {
	if !e.HasFacts() {
		return "", fmt.Errorf("%w: %s", ErrNoFactsAvailable, e.Name)
	}
	if i < 0 || i >= len(e.Facts) {
		return "", fmt.Errorf("fact index %d out of range [0, %d) for %s", i, len(e.Facts), e.Name)
	}
	return e.Facts[i], nil
}

// GetDisplayName returns the name with its first letter upper-cased
func (e AnimalEntry) GetDisplayName() string {
	if e.Name == "" {
		return ""
	}
	return strings.ToUpper(e.Name[:1]) + e.Name[1:]
}

func (e AnimalEntry) clone() AnimalEntry {
	facts := make([]string, len(e.Facts))
	copy(facts, e.Facts)
	e.Facts = facts
	return e
}

// Dataset is an ordered, read-only mapping from animal name to entry.
// Iteration order is the insertion order of the source.
type Dataset struct {
	entries []AnimalEntry
	index   map[string]int
}

// NewDataset creates a dataset from entries, keeping their order.
// Entries are copied; later changes to the arguments do not leak in.
func NewDataset(entries ...AnimalEntry) (*Dataset, error) {
	d := &Dataset{
		entries: make([]AnimalEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidEntry)
		}
		if _, exists := d.index[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnimal, entry.Name)
		}
		d.index[entry.Name] = len(d.entries)
		d.entries = append(d.entries, entry.clone())
	}

	return d, nil
}

// Len returns the number of animals
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Contains reports whether name is in the dataset
func (d *Dataset) Contains(name string) bool {
	if d == nil {
		return false
	}
	_, exists := d.index[name]
	return exists
}

// Lookup returns a copy of the entry for name, or ErrUnknownAnimal
func (d *Dataset) Lookup(name string) (AnimalEntry, error) {
	if d == nil {
		return AnimalEntry{}, fmt.Errorf("%w: %s", ErrUnknownAnimal, name)
	}
	i, exists := d.index[name]
	if !exists {
		return AnimalEntry{}, fmt.Errorf("%w: %s", ErrUnknownAnimal, name)
	}
	return d.entries[i].clone(), nil
}

// Entries returns copies of all entries in dataset order
func (d *Dataset) Entries() []AnimalEntry {
	if d == nil {
		return nil
	}
	out := make([]AnimalEntry, len(d.entries))
	for i, entry := range d.entries {
		out[i] = entry.clone()
	}
	return out
}

// Names returns animal names in dataset order
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.entries))
	for i, entry := range d.entries {
		names[i] = entry.Name
	}
	return names
}
