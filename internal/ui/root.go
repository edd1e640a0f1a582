package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-converter/internal/config"
	"github.com/ytget/file-converter/internal/convert"
	"github.com/ytget/file-converter/internal/model"
	"github.com/ytget/file-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	state        *model.FormState
	converter    convert.Converter
	settings     *config.Settings
	localization *Localization

	pathEntry    *widget.Entry
	browseBtn    *widget.Button
	formatSelect *widget.Select
	formatLabel  *widget.Label
	convertBtn   *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	openBtn               *widget.Button
	revealBtn             *widget.Button

	lastTask *model.ConversionTask

	// revealFile is swapped in tests
	revealFile func(path string) error
	openFile   func(path string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converter convert.Converter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		state:        model.NewFormState(),
		converter:    converter,
		settings:     settings,
		localization: localization,
		revealFile:   platform.OpenFileInManager,
		openFile:     platform.OpenFileWithDefaultApp,
	}

	ui.converter.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// State returns the form state driving the widgets
func (ui *RootUI) State() *model.FormState {
	return ui.state
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyPathPlaceholder))
	ui.pathEntry.OnChanged = ui.onPathChanged
	ui.pathEntry.OnSubmitted = func(string) {
		ui.onConvertClick()
	}

	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowseClick)

	ui.formatSelect = widget.NewSelect(model.OutputFormatLabels(), ui.onFormatChanged)
	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyImageExtension))

	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(AppIconResource)
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	pathRow := container.NewBorder(nil, nil, container.NewHBox(logo, settingsBtn), ui.browseBtn, ui.pathEntry)
	formatRow := container.NewHBox(ui.formatSelect, ui.formatLabel)

	// Notification panel under the form (hidden until the first conversion)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyReveal), ui.onRevealClick)
	ui.openBtn.Hide()
	ui.revealBtn.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.openBtn, ui.revealBtn), ui.notificationLabel)
	ui.notificationContainer.Hide()

	content := container.NewVBox(
		pathRow,
		formatRow,
		ui.convertBtn,
		widget.NewSeparator(),
		ui.notificationContainer,
	)

	ui.refreshForm()
	ui.window.SetContent(container.NewPadded(content))

	log.Printf("UI setup completed successfully")
}

// refreshForm re-renders the form widgets from the state record
func (ui *RootUI) refreshForm() {
	if ui.pathEntry.Text != ui.state.FilePath {
		ui.pathEntry.SetText(ui.state.FilePath)
	}
	if ui.formatSelect.Selected != ui.state.Ext.String() {
		ui.formatSelect.SetSelected(ui.state.Ext.String())
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onPathChanged stores every keystroke in the form state
func (ui *RootUI) onPathChanged(text string) {
	ui.state.SetFilePath(text)
}

// onFormatChanged stores the selected target format
func (ui *RootUI) onFormatChanged(label string) {
	format, err := model.ParseOutputFormat(label)
	if err != nil {
		log.Printf("Ignoring format selection: %v", err)
		return
	}
	ui.state.SetFormat(format)
}

// onConvertClick runs one conversion with the current form state.
// The call is synchronous: the window does not redraw until it returns.
func (ui *RootUI) onConvertClick() {
	if ui.lastTask != nil && ui.lastTask.Status.IsActive() {
		log.Printf("Convert ignored: %s is still converting", ui.lastTask.InputPath)
		return
	}

	log.Printf("Convert requested: path=%q format=%s", ui.state.FilePath, ui.state.Ext)

	if _, err := ui.converter.Convert(*ui.state); err != nil {
		log.Printf("Conversion attempt ended with error: %v", err)
	}
}

// onTaskUpdate handles task updates from the conversion service
func (ui *RootUI) onTaskUpdate(task *model.ConversionTask) {
	ui.lastTask = task
	if !task.Status.IsFinished() {
		return
	}

	ui.showTaskResult(task)

	if task.HasOutput() && ui.settings.GetRevealOnComplete() {
		log.Printf("Revealing converted file %s", task.OutputPath)
		ui.onRevealClick()
	}
}

// showTaskResult renders the outcome of a finished task in the notification panel
func (ui *RootUI) showTaskResult(task *model.ConversionTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		ui.notificationLabel.Importance = widget.SuccessImportance
		ui.notificationLabel.SetText(ui.localization.GetText(KeyConvertedTo) + StatusSeparator + task.GetDisplayName())
	case model.TaskStatusSkipped:
		ui.notificationLabel.Importance = widget.WarningImportance
		ui.notificationLabel.SetText(task.Message)
	default:
		ui.notificationLabel.Importance = widget.DangerImportance
		ui.notificationLabel.SetText(task.Message)
	}

	if task.HasOutput() {
		ui.openBtn.Show()
		ui.revealBtn.Show()
	} else {
		ui.openBtn.Hide()
		ui.revealBtn.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// onBrowseClick opens a file picker filtered to decodable images
func (ui *RootUI) onBrowseClick() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File picker error: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.setFilePath(path)
	}, ui.window)

	picker.SetFilter(storage.NewExtensionFileFilter(convert.InputExtensions))

	if dir, err := platform.GetHomePicturesDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			picker.SetLocation(lister)
		}
	}

	picker.Show()
}

// setFilePath writes a picked path into the state and re-renders the form
func (ui *RootUI) setFilePath(path string) {
	ui.state.SetFilePath(path)
	ui.refreshForm()
}

// onOpenClick opens the last converted file with the default application
func (ui *RootUI) onOpenClick() {
	ui.withLastOutput(ui.openFile)
}

// onRevealClick reveals the last converted file in the file manager
func (ui *RootUI) onRevealClick() {
	ui.withLastOutput(ui.revealFile)
}

func (ui *RootUI) withLastOutput(action func(path string) error) {
	if ui.lastTask == nil || !ui.lastTask.HasOutput() {
		return
	}

	if err := action(ui.lastTask.OutputPath); err != nil {
		log.Printf("Error opening file %s: %v", ui.lastTask.OutputPath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyPathPlaceholder))
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.formatLabel.SetText(ui.localization.GetText(KeyImageExtension))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.revealBtn.SetText(ui.localization.GetText(KeyReveal))

	if ui.lastTask != nil && ui.lastTask.Status.IsFinished() {
		ui.showTaskResult(ui.lastTask)
	}
}
