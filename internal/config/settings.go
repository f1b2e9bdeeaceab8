package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyTitle          = "title"
	KeyShowBackground = "show_background"
	KeyDataPath       = "data_path"
	KeyLanguage       = "app_language"
	KeyDebug          = "debug_logging"
)

// Default values
const (
	DefaultTitle          = ""
	DefaultShowBackground = true
	DefaultDataPath       = ""
	DefaultLanguage       = "system"
	DefaultDebug          = false
)

// Settings manages application configuration. Values applied from the
// command line shadow stored preferences without being written to them.
type Settings struct {
	app     fyne.App
	session Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTitle returns the custom title and whether one is set.
// An empty stored value means unset.
func (s *Settings) GetTitle() (string, bool) {
	if s.session.Title != nil {
		return *s.session.Title, *s.session.Title != ""
	}
	title := s.app.Preferences().String(KeyTitle)
	return title, title != ""
}

// SetTitle sets the custom title; an empty string clears it
func (s *Settings) SetTitle(title string) {
	s.session.Title = nil
	if title == "" {
		s.app.Preferences().RemoveValue(KeyTitle)
		return
	}
	s.app.Preferences().SetString(KeyTitle, title)
}

// GetShowBackground returns whether the banner image is rendered
func (s *Settings) GetShowBackground() bool {
	if s.session.ShowBackground != nil {
		return *s.session.ShowBackground
	}
	return s.app.Preferences().BoolWithFallback(KeyShowBackground, DefaultShowBackground)
}

// SetShowBackground sets whether the banner image is rendered
func (s *Settings) SetShowBackground(show bool) {
	s.session.ShowBackground = nil
	s.app.Preferences().SetBool(KeyShowBackground, show)
}

// GetDataPath returns the dataset file path, "" for the embedded dataset
func (s *Settings) GetDataPath() string {
	if s.session.DataPath != nil {
		return *s.session.DataPath
	}
	return s.app.Preferences().StringWithFallback(KeyDataPath, DefaultDataPath)
}

// SetDataPath sets the dataset file path
func (s *Settings) SetDataPath(path string) {
	s.session.DataPath = nil
	s.app.Preferences().SetString(KeyDataPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.session.Language != nil && *s.session.Language != "" {
		return *s.session.Language
	}
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.session.Language = nil
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDebug returns whether verbose logging is enabled
func (s *Settings) GetDebug() bool {
	if s.session.Debug != nil {
		return *s.session.Debug
	}
	return s.app.Preferences().BoolWithFallback(KeyDebug, DefaultDebug)
}

// SetDebug sets whether verbose logging is enabled
func (s *Settings) SetDebug(debug bool) {
	s.session.Debug = nil
	s.app.Preferences().SetBool(KeyDebug, debug)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Overrides holds per-session values from the command line.
// Nil fields fall through to the stored setting.
type Overrides struct {
	Title          *string
	ShowBackground *bool
	DataPath       *string
	Language       *string
	Debug          *bool
}

// Apply layers the non-nil overrides over the stored settings for the
// lifetime of s. Preferences are not modified; a later setter call for the
// same key drops its override.
func (s *Settings) Apply(o Overrides) {
	if o.Title != nil {
		title := *o.Title
		s.session.Title = &title
	}
	if o.ShowBackground != nil {
		show := *o.ShowBackground
		s.session.ShowBackground = &show
	}
	if o.DataPath != nil {
		path := *o.DataPath
		s.session.DataPath = &path
	}
	if o.Language != nil {
		lang := *o.Language
		s.session.Language = &lang
	}
	if o.Debug != nil {
		debug := *o.Debug
		s.session.Debug = &debug
	}
}
