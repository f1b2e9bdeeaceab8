package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OceanTheme is a compact theme with a sea-blue palette and larger headings
type OceanTheme struct{}

// NewOceanTheme creates a new ocean theme
func NewOceanTheme() fyne.Theme {
	return &OceanTheme{}
}

// Color returns theme colors
func (t *OceanTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 119, B: 182, A: 255} // Deep sea blue
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameHover:
		return color.RGBA{R: 0, G: 180, B: 216, A: 40} // Light aqua highlight on tiles
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 3, G: 4, B: 94, A: 255} // Navy
		}
		return color.RGBA{R: 202, G: 240, B: 248, A: 255} // Pale aqua
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 3, G: 4, B: 94, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *OceanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *OceanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *OceanTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 15 // facts are read, not scanned
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
