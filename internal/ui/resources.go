package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/animal-facts/internal/platform"
)

const (
	AppIcon = "animal-facts.png"
)

// Banner fallback gradient, shallow to deep water
var (
	BannerTopColor    = color.RGBA{R: 144, G: 224, B: 239, A: 255}
	BannerBottomColor = color.RGBA{R: 0, G: 119, B: 182, A: 255}
)

// LoadAppIcon loads the window icon from the working directory
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// loadImage resolves a dataset image, falling back to the theme's broken image icon
func loadImage(baseDir, imagePath string) (fyne.Resource, bool) {
	res, err := platform.ImageResource(baseDir, imagePath)
	if err != nil {
		log.Printf("Image %q unavailable, using placeholder: %v", imagePath, err)
		return theme.BrokenImageIcon(), false
	}
	return res, true
}

// newBannerObject renders the banner image, or a water gradient when the file is missing
func newBannerObject(baseDir, imagePath string) fyne.CanvasObject {
	res, err := platform.ImageResource(baseDir, imagePath)
	if err != nil {
		log.Printf("Banner %q unavailable, using gradient: %v", imagePath, err)
		gradient := canvas.NewVerticalGradient(BannerTopColor, BannerBottomColor)
		gradient.SetMinSize(fyne.NewSize(0, BannerHeight))
		return gradient
	}

	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(0, BannerHeight))
	return img
}
