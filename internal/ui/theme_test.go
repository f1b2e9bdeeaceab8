package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestOceanTheme(t *testing.T) {
	th := NewOceanTheme()

	if th.Color(theme.ColorNamePrimary, theme.VariantLight) == nil {
		t.Error("Primary color should not be nil")
	}
	if th.Color(theme.ColorNameBackground, theme.VariantDark) == th.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("Background should differ between light and dark variants")
	}
	if th.Size(theme.SizeNameHeadingText) <= th.Size(theme.SizeNameText) {
		t.Error("Heading text should be larger than body text")
	}
	if th.Size(theme.SizeNameScrollBar) != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Error("Unhandled sizes should come from the default theme")
	}
	if th.Icon(theme.IconNameSettings) == nil {
		t.Error("Icons should come from the default theme")
	}
}
