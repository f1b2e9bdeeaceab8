package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/animal-facts/internal/config"
	"github.com/ytget/animal-facts/internal/dataset"
	"github.com/ytget/animal-facts/internal/model"
	"github.com/ytget/animal-facts/internal/platform"
	"github.com/ytget/animal-facts/internal/presenter"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	dataset   *model.Dataset
	dataPath  string
	picker    presenter.Picker
	surface   *FyneSurface
	presenter *presenter.FactPresenter

	settingsDialog *SettingsDialog
	settingsBtn    *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label

	lastFact model.SelectedFact
}

// NewRootUI creates and initializes the main UI. A nil picker selects a
// crypto-seeded one.
func NewRootUI(window fyne.Window, settings *config.Settings, data *model.Dataset, picker presenter.Picker) (*RootUI, error) {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if picker == nil {
		p, err := presenter.NewRandomPicker()
		if err != nil {
			return nil, err
		}
		picker = p
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		dataset:      data,
		dataPath:     settings.GetDataPath(),
		picker:       picker,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	if err := ui.render(); err != nil {
		return nil, err
	}

	log.Printf("RootUI initialized with %d animals", data.Len())
	return ui, nil
}

// setupUI creates the static parts of the window
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.surface = NewFyneSurface(platform.DataDir(ui.dataPath), ui.onMount)
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.loadDataset, ui.onSettingsSaved)
}

// onMount places freshly rendered content in the window
func (ui *RootUI) onMount(content fyne.CanvasObject) {
	top := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.notificationContainer)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, container.NewVScroll(content)))
}

// options maps stored settings to presenter options
func (ui *RootUI) options() presenter.Options {
	opts := presenter.DefaultOptions()
	opts.Title, _ = ui.settings.GetTitle()
	opts.FallbackTitle = ui.localization.GetText(KeyDefaultTitle)
	opts.ShowBackground = ui.settings.GetShowBackground()
	return opts
}

// render builds a presenter for the current settings and mounts its tree
func (ui *RootUI) render() error {
	p, err := presenter.New(ui.dataset, ui.surface, ui.options(), ui.picker)
	if err != nil {
		return err
	}
	p.SetCallbacks(ui.onFact, ui.onActivationError)

	if _, err := p.Initialize(); err != nil {
		return err
	}
	ui.presenter = p

	if ui.dataset.Len() == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoAnimals))
	}
	return nil
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReloadDataset), ui.onReloadDataset)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refresh()
}

// refresh re-applies texts, rebuilds the settings dialog, and re-renders
func (ui *RootUI) refresh() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.loadDataset, ui.onSettingsSaved)
	ui.hideNotification()

	if err := ui.render(); err != nil {
		log.Printf("Error rendering UI: %v", err)
		ui.showNotification(ui.localization.GetText(KeyActivationFailed))
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// onSettingsSaved applies stored settings to the running UI. On a load error
// the current dataset and stored path are kept.
func (ui *RootUI) onSettingsSaved(loadErr error) {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refresh()

	if loadErr != nil {
		ui.showNotification(ui.localization.GetText(KeyDatasetLoadFailed) + ": " + loadErr.Error())
	}
}

// onReloadDataset re-reads the configured dataset
func (ui *RootUI) onReloadDataset() {
	if err := ui.loadDataset(ui.settings.GetDataPath()); err != nil {
		ui.showNotification(ui.localization.GetText(KeyDatasetLoadFailed) + ": " + err.Error())
		return
	}
	ui.refresh()
	ui.showNotification(ui.localization.GetText(KeyDatasetReloaded))
}

// loadDataset swaps in the dataset at path; the current one is kept on error
func (ui *RootUI) loadDataset(path string) error {
	d, err := dataset.LoadPath(path)
	if err != nil {
		log.Printf("Error loading dataset %q: %v", path, err)
		return err
	}

	ui.dataset = d
	ui.dataPath = path
	ui.surface.baseDir = platform.DataDir(path)
	log.Printf("Dataset loaded from %q: %d animals", path, d.Len())
	return nil
}

// onFact clears any stale error once a fact is shown
func (ui *RootUI) onFact(fact model.SelectedFact) {
	ui.lastFact = fact
	ui.hideNotification()
}

// onActivationError shows a localized message; the fact label keeps its content
func (ui *RootUI) onActivationError(name string, err error) {
	ui.showNotification(IconError + " " + ui.localization.ErrorText(err))
}

// showNotification displays a message in the notification panel
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationLabel.SetText("")
	ui.notificationContainer.Hide()
}

// Surface returns the display surface
func (ui *RootUI) Surface() *FyneSurface {
	return ui.surface
}

// Presenter returns the active presenter
func (ui *RootUI) Presenter() *presenter.FactPresenter {
	return ui.presenter
}

// LastFact returns the most recently displayed fact
func (ui *RootUI) LastFact() model.SelectedFact {
	return ui.lastFact
}

// Notification returns the notification text and whether it is visible
func (ui *RootUI) Notification() (string, bool) {
	return ui.notificationLabel.Text, ui.notificationContainer.Visible()
}
