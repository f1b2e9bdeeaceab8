package ui

import (
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestAnimalTile_TapDispatchesLabel(t *testing.T) {
	test.NewApp()

	var got []string
	tile := NewAnimalTile("dolphin", "Dolphin", theme.BrokenImageIcon(), func(label string) {
		got = append(got, label)
	})

	test.Tap(tile)
	test.Tap(tile)

	if len(got) != 2 || got[0] != "dolphin" || got[1] != "dolphin" {
		t.Errorf("Expected two activations for dolphin, got %v", got)
	}
	if tile.Label() != "dolphin" {
		t.Errorf("Expected label 'dolphin', got '%s'", tile.Label())
	}
	if tile.Caption() != "Dolphin" {
		t.Errorf("Expected caption 'Dolphin', got '%s'", tile.Caption())
	}
}

func TestAnimalTile_NilHandler(t *testing.T) {
	test.NewApp()

	tile := NewAnimalTile("lobster", "Lobster", theme.BrokenImageIcon(), nil)
	test.Tap(tile) // must not panic
}

func TestAnimalTile_Layout(t *testing.T) {
	test.NewApp()

	tile := NewAnimalTile("starfish", "Starfish", theme.BrokenImageIcon(), nil)
	size := tile.MinSize()
	if size.Width < TileMinWidth {
		t.Errorf("Expected min width >= %v, got %v", TileMinWidth, size.Width)
	}
	if size.Height < TileImageSize {
		t.Errorf("Expected min height >= %v, got %v", TileImageSize, size.Height)
	}
	if tile.Cursor() != desktop.PointerCursor {
		t.Error("Expected pointer cursor")
	}
}
