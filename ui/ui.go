package ui

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/isc-ctu/esnresizer/asset"
	"github.com/isc-ctu/esnresizer/config"
	"github.com/isc-ctu/esnresizer/pkg/gallery"
	"github.com/isc-ctu/esnresizer/pkg/resizer"
	"github.com/isc-ctu/esnresizer/util/log"
)

// ResizerApp is the main window of the resizer.
type ResizerApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	cfg      *config.AppConfig
	session  *resizer.Session

	watchFolders bool
	watcher      *gallery.Watcher
	watchGen     int // bumped whenever the watched folder changes
	syncing      bool // list selection is being restored, not chosen

	folderEntry   *widget.Entry
	fileList      *widget.List
	statusLabel   *widget.Label
	preview       *canvas.Image
	saveJPGButton *widget.Button
	saveButton    *widget.Button
}

// NewResizerApp builds the main window on a. The last folder is reopened
// when the preference for it is set.
func NewResizerApp(a fyne.App) *ResizerApp {
	return newResizerApp(a, true)
}

func newResizerApp(a fyne.App, watchFolders bool) *ResizerApp {
	cfg := config.NewAppConfig(a.Preferences())
	ra := &ResizerApp{
		app:          a,
		assetMgr:     asset.NewManager(),
		cfg:          cfg,
		session:      resizer.NewSession(resizer.WithJPEGQuality(cfg.GetJPEGQuality())),
		watchFolders: watchFolders,
	}

	if icon, err := ra.assetMgr.GetIcon("app.svg"); err == nil {
		a.SetIcon(icon)
	}

	ra.window = a.NewWindow(config.WindowTitle)
	ra.window.SetContent(ra.createContent())
	ra.window.SetMainMenu(ra.createMainMenu())
	ra.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	ra.window.SetOnClosed(ra.stopWatching)

	if cfg.GetRestoreLastFolder() {
		if last := cfg.GetLastFolder(); last != "" {
			ra.OpenFolder(last)
		}
	}
	return ra
}

// Run shows the window and blocks until the application quits.
func (ra *ResizerApp) Run() {
	ra.window.ShowAndRun()
}

// Window returns the main window.
func (ra *ResizerApp) Window() fyne.Window {
	return ra.window
}

func (ra *ResizerApp) createContent() fyne.CanvasObject {
	ra.folderEntry = widget.NewEntry()
	ra.folderEntry.SetPlaceHolder("Path to a folder with pictures")
	ra.folderEntry.OnSubmitted = ra.OpenFolder

	browseButton := widget.NewButton("Browse...", ra.browse)

	ra.fileList = widget.NewList(
		func() int {
			return len(ra.session.Files())
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("image.jpg")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			files := ra.session.Files()
			if i < len(files) {
				o.(*widget.Label).SetText(files[i])
			}
		},
	)
	ra.fileList.OnSelected = ra.selectFile

	left := container.NewBorder(
		container.NewVBox(
			newStyledLabel(folderLabel, headingStyle),
			container.NewBorder(nil, nil, nil, browseButton, ra.folderEntry),
		),
		nil, nil, nil,
		ra.fileList,
	)

	ra.statusLabel = newStatusLabel()

	ra.preview = canvas.NewImageFromImage(placeholderPreview())
	ra.preview.FillMode = canvas.ImageFillContain
	previewWidth, previewHeight := config.CanvasWidth/config.PreviewDivisor, config.CanvasHeight/config.PreviewDivisor
	ra.preview.SetMinSize(fyne.NewSize(float32(previewWidth), float32(previewHeight)))

	ra.saveJPGButton = widget.NewButton(saveJPGButtonText, func() { ra.save(gallery.SaveJPEG) })
	ra.saveButton = widget.NewButton(saveButtonText, func() { ra.save(gallery.SaveOriginal) })
	ra.saveButton.Importance = widget.HighImportance
	ra.setSaveEnabled(false)

	right := container.NewVBox(
		newStyledLabel(chooseLabel, headingStyle),
		ra.preview,
		ra.statusLabel,
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), ra.saveJPGButton, ra.saveButton),
	)

	return container.NewPadded(NewSplitRow(left, right, leftColumnShare))
}

func (ra *ResizerApp) createMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Folder...", ra.browse),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", ra.CreatePreferencesWindow),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About "+config.AppName, ra.showAbout),
	)
	return fyne.NewMainMenu(fileMenu, helpMenu)
}

// browse opens the native folder picker, starting at the current folder.
func (ra *ResizerApp) browse() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ra.showError(err)
			return
		}
		if uri == nil {
			return // cancelled
		}
		ra.OpenFolder(uri.Path())
	}, ra.window)

	if dir := ra.session.Folder(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// OpenFolder lists the images in dir and starts watching it for changes.
func (ra *ResizerApp) OpenFolder(dir string) {
	if ra.folderEntry.Text != dir {
		ra.folderEntry.SetText(dir)
	}
	ra.stopWatching()
	ra.fileList.UnselectAll()
	ra.clearPreview()

	_, err := ra.session.OpenFolder(dir)
	ra.fileList.Refresh()
	if err != nil {
		ra.showError(err)
		return
	}

	ra.cfg.SetLastFolder(dir)
	ra.showFolderStatus()

	if ra.watchFolders {
		w, err := gallery.Watch(dir, ra.folderChanged(ra.watchGen))
		if err != nil {
			log.Printf("Not watching %s: %v", dir, err)
			return
		}
		ra.watcher = w
	}
}

// refresh re-reads the open folder after it changed on disk.
func (ra *ResizerApp) refresh() {
	selected := ra.session.Selected()

	_, err := ra.session.Refresh()
	ra.fileList.Refresh()
	if err != nil {
		ra.fileList.UnselectAll()
		ra.clearPreview()
		ra.showError(err)
		return
	}

	if selected == "" {
		return
	}
	if ra.session.Selected() == "" {
		ra.fileList.UnselectAll()
		ra.clearPreview()
		ra.setStatus(fmt.Sprintf("%s was removed from the folder.", selected), widget.WarningImportance)
		return
	}

	// Entries may have moved; keep the highlight on the selected file.
	ra.syncing = true
	ra.fileList.UnselectAll()
	ra.fileList.Select(slices.Index(ra.session.Files(), selected))
	ra.syncing = false
}

func (ra *ResizerApp) selectFile(id widget.ListItemID) {
	if ra.syncing {
		return
	}
	files := ra.session.Files()
	if id < 0 || id >= len(files) {
		return
	}

	if err := ra.session.Select(files[id]); err != nil {
		ra.clearPreview()
		ra.showError(err)
		return
	}

	preview, err := ra.session.Preview()
	if err != nil {
		ra.clearPreview()
		ra.showError(err)
		return
	}

	ra.setPreview(preview)
	ra.setSaveEnabled(true)
	path, _ := ra.session.SelectedPath()
	ra.setStatus("Preview of: "+path, widget.MediumImportance)
}

func (ra *ResizerApp) save(mode gallery.SaveMode) {
	path, err := ra.session.Save(mode)
	if err != nil {
		ra.showError(err)
		if resizer.KindOf(err) == resizer.KindWriteFailure {
			dialog.ShowError(errors.New(resizer.Describe(err)), ra.window)
		}
		return
	}
	ra.setStatus("Saved: "+path, widget.SuccessImportance)
}

// CreatePreferencesWindow opens the preferences window.
func (ra *ResizerApp) CreatePreferencesWindow() {
	prefsWindow := ra.app.NewWindow(config.AppName + " Preferences")

	qualityValue := widget.NewLabel(fmt.Sprint(ra.cfg.GetJPEGQuality()))
	qualitySlider := widget.NewSlider(1, 100)
	qualitySlider.Step = 1
	qualitySlider.SetValue(float64(ra.cfg.GetJPEGQuality()))
	qualitySlider.OnChanged = func(v float64) {
		qualityValue.SetText(fmt.Sprint(int(v)))
	}
	qualitySlider.OnChangeEnded = func(v float64) {
		ra.cfg.SetJPEGQuality(int(v))
		ra.session.SetJPEGQuality(ra.cfg.GetJPEGQuality())
	}

	restoreCheck := widget.NewCheck("Reopen the last folder on start", func(b bool) {
		ra.cfg.SetRestoreLastFolder(b)
	})
	restoreCheck.SetChecked(ra.cfg.GetRestoreLastFolder())

	closeButton := widget.NewButton("Close", prefsWindow.Close)

	c := container.NewVBox(
		newStyledLabel("Saving", headingStyle),
		newStyledLabel("JPEG quality:", settingStyle),
		newStyledLabel("Used by Save jpg and when the original is a JPEG. Higher keeps more detail.", descriptionStyle),
		container.NewBorder(nil, nil, nil, qualityValue, qualitySlider),
		widget.NewSeparator(),
		newStyledLabel("Startup", headingStyle),
		restoreCheck,
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), closeButton),
	)

	prefsWindow.SetContent(container.NewPadded(c))
	prefsWindow.Resize(fyne.NewSize(420, 300))
	prefsWindow.CenterOnScreen()
	prefsWindow.Show()
}

func (ra *ResizerApp) showAbout() {
	text, err := ra.assetMgr.GetText("about.txt")
	if err != nil {
		text = config.AppName
	}
	body := widget.NewLabel(fmt.Sprintf("%s\n\nVersion: %s", text, config.AppVersion))
	body.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom("About "+config.AppName, "Close", body, ra.window)
	d.Resize(fyne.NewSize(480, 0))
	d.Show()
}

func (ra *ResizerApp) showFolderStatus() {
	dir := ra.session.Folder()
	switch n := len(ra.session.Files()); n {
	case 0:
		ra.setStatus("No images in "+dir, widget.WarningImportance)
	case 1:
		ra.setStatus("1 image in "+dir, widget.MediumImportance)
	default:
		ra.setStatus(fmt.Sprintf("%d images in %s", n, dir), widget.MediumImportance)
	}
}

func (ra *ResizerApp) showError(err error) {
	log.Printf("%s: %v", resizer.KindOf(err), err)
	ra.setStatus(resizer.Describe(err), widget.DangerImportance)
}

func (ra *ResizerApp) setStatus(text string, importance widget.Importance) {
	showStatus(ra.statusLabel, text, importance)
}

func (ra *ResizerApp) setPreview(img image.Image) {
	ra.preview.Image = img
	ra.preview.Refresh()
}

func (ra *ResizerApp) clearPreview() {
	ra.setPreview(placeholderPreview())
	ra.setSaveEnabled(false)
}

func (ra *ResizerApp) setSaveEnabled(enabled bool) {
	for _, b := range []*widget.Button{ra.saveJPGButton, ra.saveButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// folderChanged returns the watcher callback for generation gen. Refreshes
// queued for an earlier folder are dropped on the UI thread.
func (ra *ResizerApp) folderChanged(gen int) func() {
	return func() {
		fyne.Do(func() {
			if gen != ra.watchGen {
				return
			}
			ra.refresh()
		})
	}
}

func (ra *ResizerApp) stopWatching() {
	ra.watchGen++
	if ra.watcher == nil {
		return
	}
	if err := ra.watcher.Close(); err != nil {
		log.Printf("Closing folder watcher: %v", err)
	}
	ra.watcher = nil
}
