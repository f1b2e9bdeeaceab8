package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It implements the presenter's display surface with tappable animal tiles and a
// fact label, and wires settings, localization, and notifications around it.
