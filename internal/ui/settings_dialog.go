package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/animal-facts/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	loadDataset  func(path string) error
	onSaved      func(loadErr error)

	// UI components
	titleEntry       *widget.Entry
	backgroundCheck  *widget.Check
	dataPathEntry    *widget.Entry
	languageSelect   *widget.Select
	languageCodes    map[string]string // display name -> code
	languageDisplays map[string]string // code -> display name
}

// NewSettingsDialog creates a new settings dialog. A changed data path is
// stored only after loadDataset accepts it; onSaved runs after values are
// stored and receives the load error, if any.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, loadDataset func(path string) error, onSaved func(loadErr error)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		loadDataset:  loadDataset,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.titleEntry = widget.NewEntry()
	sd.titleEntry.SetPlaceHolder(l.GetText(KeyTitlePlaceholder))

	sd.backgroundCheck = widget.NewCheck(l.GetText(KeyShowBackground), nil)

	sd.dataPathEntry = widget.NewEntry()
	sd.dataPathEntry.SetPlaceHolder(l.GetText(KeyEmbeddedDataset))
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDataset)
	dataPathRow := container.NewBorder(nil, nil, nil, browseBtn, sd.dataPathEntry)

	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	sd.languageDisplays = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		sd.languageDisplays[code] = name
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeySelectLanguageHint)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyTitle)+":"),
		sd.titleEntry,
		sd.backgroundCheck,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyDatasetSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDataPath)+":"),
		dataPathRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	title, _ := sd.settings.GetTitle()
	sd.titleEntry.SetText(title)
	sd.backgroundCheck.SetChecked(sd.settings.GetShowBackground())
	sd.dataPathEntry.SetText(sd.settings.GetDataPath())
	sd.languageSelect.SetSelected(sd.languageDisplays[sd.settings.GetLanguage()])
}

// onBrowseDataset lets the user pick a YAML dataset file
func (sd *SettingsDialog) onBrowseDataset() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.dataPathEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save stores the form values and notifies the owner
func (sd *SettingsDialog) save() {
	// An empty title clears the custom title
	sd.settings.SetTitle(sd.titleEntry.Text)
	sd.settings.SetShowBackground(sd.backgroundCheck.Checked)

	// A path that fails to load never reaches preferences
	var loadErr error
	path := sd.dataPathEntry.Text
	if path != sd.settings.GetDataPath() && sd.loadDataset != nil {
		loadErr = sd.loadDataset(path)
	}
	if loadErr == nil {
		sd.settings.SetDataPath(path)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved(loadErr)
	}
}
