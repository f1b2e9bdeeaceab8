package ui

import (
	"errors"

	"github.com/ytget/animal-facts/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDefaultTitle       = "default_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyTitle              = "title"
	KeyTitlePlaceholder   = "title_placeholder"
	KeyShowBackground     = "show_background"
	KeyDataPath           = "data_path"
	KeyEmbeddedDataset    = "embedded_dataset"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyUnknownAnimal      = "unknown_animal"
	KeyNoFacts            = "no_facts"
	KeyActivationFailed   = "activation_failed"
	KeyDatasetLoadFailed  = "dataset_load_failed"
	KeyNoAnimals          = "no_animals"
	KeyReloadDataset      = "reload_dataset"
	KeyDatasetReloaded    = "dataset_reloaded"
	KeyInterfaceSettings  = "interface_settings"
	KeyDatasetSettings    = "dataset_settings"
	KeySelectLanguageHint = "select_language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// ErrorText maps an activation error to a user-facing message
func (l *Localization) ErrorText(err error) string {
	switch {
	case errors.Is(err, model.ErrUnknownAnimal):
		return l.GetText(KeyUnknownAnimal)
	case errors.Is(err, model.ErrNoFactsAvailable):
		return l.GetText(KeyNoFacts)
	default:
		return l.GetText(KeyActivationFailed)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Animal Fun Facts",
		KeyDefaultTitle:       "Click an animal for a fun fact",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyTitle:              "Title",
		KeyTitlePlaceholder:   "Leave empty for the default title",
		KeyShowBackground:     "Show background",
		KeyDataPath:           "Dataset file",
		KeyEmbeddedDataset:    "Built-in animals",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyUnknownAnimal:      "That animal is not in the dataset",
		KeyNoFacts:            "No facts about this animal yet",
		KeyActivationFailed:   "Could not show a fact",
		KeyDatasetLoadFailed:  "Could not load dataset",
		KeyNoAnimals:          "The dataset has no animals",
		KeyReloadDataset:      "Reload dataset",
		KeyDatasetReloaded:    "Dataset reloaded",
		KeyInterfaceSettings:  "Interface",
		KeyDatasetSettings:    "Dataset",
		KeySelectLanguageHint: "Select language",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Забавные факты о животных",
		KeyDefaultTitle:       "Нажмите на животное, чтобы узнать забавный факт",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyTitle:              "Заголовок",
		KeyTitlePlaceholder:   "Оставьте пустым для заголовка по умолчанию",
		KeyShowBackground:     "Показывать фон",
		KeyDataPath:           "Файл с данными",
		KeyEmbeddedDataset:    "Встроенные животные",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyUnknownAnimal:      "Этого животного нет в данных",
		KeyNoFacts:            "Об этом животном пока нет фактов",
		KeyActivationFailed:   "Не удалось показать факт",
		KeyDatasetLoadFailed:  "Не удалось загрузить данные",
		KeyNoAnimals:          "В данных нет животных",
		KeyReloadDataset:      "Перезагрузить данные",
		KeyDatasetReloaded:    "Данные перезагружены",
		KeyInterfaceSettings:  "Интерфейс",
		KeyDatasetSettings:    "Данные",
		KeySelectLanguageHint: "Выберите язык",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Curiosidades sobre Animais",
		KeyDefaultTitle:       "Clique em um animal para uma curiosidade",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyTitle:              "Título",
		KeyTitlePlaceholder:   "Deixe vazio para o título padrão",
		KeyShowBackground:     "Mostrar fundo",
		KeyDataPath:           "Arquivo de dados",
		KeyEmbeddedDataset:    "Animais embutidos",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyUnknownAnimal:      "Esse animal não está nos dados",
		KeyNoFacts:            "Ainda não há curiosidades sobre este animal",
		KeyActivationFailed:   "Não foi possível mostrar uma curiosidade",
		KeyDatasetLoadFailed:  "Não foi possível carregar os dados",
		KeyNoAnimals:          "Os dados não têm animais",
		KeyReloadDataset:      "Recarregar dados",
		KeyDatasetReloaded:    "Dados recarregados",
		KeyInterfaceSettings:  "Interface",
		KeyDatasetSettings:    "Dados",
		KeySelectLanguageHint: "Selecione o idioma",
	}
}
