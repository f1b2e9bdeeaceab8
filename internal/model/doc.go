package model

// Package model defines domain data structures used across the app: animal
// entries, the ordered dataset they live in, selected facts, and the error
// taxonomy for lookups. Values are immutable once placed in a Dataset.
