// Package gui is the fyne front end: a single download form with progress.
package gui

import (
	"context"
	"slices"
	"sync"
	"time"

	"ytcli/internal/app"
	"ytcli/internal/interfaces"
	"ytcli/internal/models"
	"ytcli/internal/utils/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Window holds the download form and its running download, if any.
type Window struct {
	window   fyne.Window
	settings *Settings

	downloads *app.DownloadVideo
	history   interfaces.HistoryStore // nil disables recording

	urlEntry      *widget.Entry
	outputEntry   *widget.Entry
	dirEntry      *widget.Entry
	qualitySelect *widget.Select
	fileSelect    *widget.Select
	audioCheck    *widget.Check
	startEntry    *widget.Entry
	endEntry      *widget.Entry
	itemsEntry    *widget.Entry
	ignoreCheck   *widget.Check
	downloadBtn   *widget.Button
	cancelBtn     *widget.Button

	progress binding.Float
	status   binding.String

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New builds the form into w. history may be nil.
func New(w fyne.Window, a fyne.App, d interfaces.ProgressDownloader, history interfaces.HistoryStore) *Window {
	ui := &Window{
		window:    w,
		settings:  NewSettings(a),
		downloads: app.NewDownloadVideo(d),
		history:   history,
		progress:  binding.NewFloat(),
		status:    binding.NewString(),
	}
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all widgets.
func (ui *Window) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://www.youtube.com/watch?v=...")

	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder("Filename without extension (optional)")

	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetPlaceHolder("Download directory (optional)")
	ui.dirEntry.SetText(ui.settings.DownloadDir())

	ui.qualitySelect = widget.NewSelect(QualityLabels, nil)
	ui.qualitySelect.SetSelected(LabelBest)

	audioOnly := ui.settings.AudioOnly()
	ui.fileSelect = widget.NewSelect(fileTypeOptions(audioOnly), nil)
	ui.fileSelect.PlaceHolder = "Default"
	if ft := ui.settings.FileType(); ft != "" && slices.Contains(ui.fileSelect.Options, ft) {
		ui.fileSelect.SetSelected(ft)
	}

	ui.audioCheck = widget.NewCheck("Audio only", ui.onAudioOnlyChanged)
	ui.audioCheck.SetChecked(audioOnly)

	ui.startEntry = widget.NewEntry()
	ui.startEntry.SetPlaceHolder("Start")
	ui.endEntry = widget.NewEntry()
	ui.endEntry.SetPlaceHolder("End")
	ui.itemsEntry = widget.NewEntry()
	ui.itemsEntry.SetPlaceHolder("Items, e.g. 1,3,5-7")
	ui.ignoreCheck = widget.NewCheck("Ignore errors", nil)

	ui.downloadBtn = widget.NewButton("Download", ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton("Cancel", ui.onCancel)
	ui.cancelBtn.Disable()

	ui.status.Set("Ready")

	form := widget.NewForm(
		widget.NewFormItem("URL", ui.urlEntry),
		widget.NewFormItem("Output", ui.outputEntry),
		widget.NewFormItem("Directory", ui.dirEntry),
		widget.NewFormItem("Quality", ui.qualitySelect),
		widget.NewFormItem("File type", container.NewHBox(ui.fileSelect, ui.audioCheck)),
		widget.NewFormItem("Playlist", container.NewGridWithColumns(3, ui.startEntry, ui.endEntry, ui.itemsEntry)),
		widget.NewFormItem("", ui.ignoreCheck),
	)

	content := container.NewVBox(
		form,
		container.NewHBox(ui.downloadBtn, ui.cancelBtn),
		widget.NewProgressBarWithData(ui.progress),
		widget.NewLabelWithData(ui.status),
	)
	ui.window.SetContent(container.NewPadded(content))
}

// onAudioOnlyChanged swaps the file type choices for the new mode.
func (ui *Window) onAudioOnlyChanged(checked bool) {
	if ui.fileSelect == nil {
		return
	}
	ui.fileSelect.Options = fileTypeOptions(checked)
	if !slices.Contains(ui.fileSelect.Options, ui.fileSelect.Selected) {
		ui.fileSelect.ClearSelected()
	}
	ui.fileSelect.Refresh()
}

// snapshot reads the form. Call on the UI goroutine.
func (ui *Window) snapshot() formState {
	return formState{
		URL:           ui.urlEntry.Text,
		Output:        ui.outputEntry.Text,
		QualityLabel:  ui.qualitySelect.Selected,
		FileType:      ui.fileSelect.Selected,
		AudioOnly:     ui.audioCheck.Checked,
		Dir:           ui.dirEntry.Text,
		PlaylistStart: ui.startEntry.Text,
		PlaylistEnd:   ui.endEntry.Text,
		PlaylistItems: ui.itemsEntry.Text,
		IgnoreErrors:  ui.ignoreCheck.Checked,
	}
}

// onDownload starts a download in the background.
func (ui *Window) onDownload() {
	req, err := ui.snapshot().toRequest()
	if err != nil {
		ui.status.Set(err.Error())
		return
	}

	ui.settings.SetDownloadDir(req.Dir)
	ui.settings.SetFileType(req.FileType)
	ui.settings.SetAudioOnly(req.AudioOnly)

	ctx, cancel := context.WithCancel(context.Background())
	ui.mu.Lock()
	ui.cancel = cancel
	ui.mu.Unlock()

	ui.setRunning(true)
	ui.progress.Set(0)
	ui.status.Set("Downloading...")

	go ui.run(ctx, req)
}

// run performs the download off the UI goroutine.
func (ui *Window) run(ctx context.Context, req models.Request) {
	started := time.Now()
	err := ui.downloads.ExecuteWithProgress(ctx, req, func(f float64) {
		fyne.Do(func() {
			ui.progress.Set(f)
		})
	})
	finished := time.Now()

	ui.recordHistory(req, started, finished, err)
	if err != nil {
		logging.E("Download of %q failed: %v", req.URL, err)
	}

	ui.mu.Lock()
	if ui.cancel != nil {
		ui.cancel()
		ui.cancel = nil
	}
	ui.mu.Unlock()

	msg := statusMessage(err)
	fyne.Do(func() {
		ui.status.Set(msg)
		ui.setRunning(false)
	})
}

// onCancel stops the running download.
func (ui *Window) onCancel() {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if ui.cancel != nil {
		ui.cancel()
		ui.status.Set("Cancelling...")
	}
}

// setRunning toggles the buttons. Call on the UI goroutine.
func (ui *Window) setRunning(running bool) {
	if running {
		ui.downloadBtn.Disable()
		ui.cancelBtn.Enable()
		return
	}
	ui.downloadBtn.Enable()
	ui.cancelBtn.Disable()
}

// recordHistory stores the outcome when a history store is configured.
func (ui *Window) recordHistory(req models.Request, started, finished time.Time, outcome error) {
	if ui.history == nil {
		return
	}
	if err := app.RecordOutcome(ui.history, req, started, finished, outcome); err != nil {
		logging.W("Could not record history: %v", err)
	}
}
