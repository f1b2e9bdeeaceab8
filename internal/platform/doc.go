package platform

// Package platform contains OS/platform integration: resolving dataset image
// paths on disk into Fyne resources and seeding random number generators.
