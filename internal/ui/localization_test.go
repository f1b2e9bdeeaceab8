package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ytget/animal-facts/internal/model"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyDefaultTitle) != "Click an animal for a fun fact" {
		t.Errorf("Unexpected default title: %s", l.GetText(KeyDefaultTitle))
	}

	// Unknown keys fall back to the key itself
	if l.GetText("no_such_key") != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", l.GetText("no_such_key"))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"}, // unknown languages are ignored
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", test.lang, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for code := range l.GetAvailableLanguages() {
		if len(l.texts[code]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, English has %d", code, len(l.texts[code]), len(l.texts["en"]))
		}
	}
}

func TestLocalization_ErrorText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		err      error
		expected string
	}{
		{fmt.Errorf("activate: %w: kraken", model.ErrUnknownAnimal), l.GetText(KeyUnknownAnimal)},
		{fmt.Errorf("activate: %w: ghost", model.ErrNoFactsAvailable), l.GetText(KeyNoFacts)},
		{errors.New("boom"), l.GetText(KeyActivationFailed)},
	}

	for _, test := range tests {
		result := l.ErrorText(test.err)
		if result != test.expected {
			t.Errorf("ErrorText(%v) = %s, expected %s", test.err, result, test.expected)
		}
	}
}
