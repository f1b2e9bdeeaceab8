package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides device-aware layout decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// GridColumns returns how many animal tiles fit on a row for count animals
func (m *MobileUI) GridColumns(count int) int {
	columns := DefaultColumns
	if m.IsMobileDevice() && !m.IsLandscape() {
		columns = MobileColumns
	}
	if count > 0 && count < columns {
		columns = count
	}
	if columns < 1 {
		columns = 1
	}
	return columns
}

// CreateAnimalGrid lays tiles out in an adaptive grid sized for the device
func (m *MobileUI) CreateAnimalGrid(tiles ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(m.GridColumns(len(tiles)), tiles...)
}
