package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
)

// Layout sizing (animal grid / banner)
const (
	TileImageSize    float32 = 160
	TileMinWidth     float32 = 140
	BannerHeight     float32 = 120
	DefaultColumns           = 3
	MobileColumns            = 1
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)
