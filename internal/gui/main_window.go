package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/vidshare/internal/controller"
	"codeberg.org/snonux/vidshare/internal/logging"
)

const (
	textNoFile     = "未选择文件"
	textDropHint   = "拖拽视频文件到此处，或"
	textChooseFile = "选择文件"
	textRefresh    = "刷新"
	textQuit       = "退出"
)

type MainWindow struct {
	window      fyne.Window
	app         *App
	content     fyne.CanvasObject
	split       *container.Split
	status      *StatusBar
	videoList   *VideoList
	playerPanel *PlayerPanel
	fileLabel   *widget.Label
	uploadArea  fyne.CanvasObject
	toolbar     *fyne.Container
}

func NewMainWindow(app *App) *MainWindow {
	window := app.fyneApp.NewWindow("vidshare - " + app.server)

	mw := &MainWindow{
		window: window,
		app:    app,
	}

	mw.status = NewStatusBar()
	mw.videoList = NewVideoList()
	mw.playerPanel = NewPlayerPanel()
	mw.setupCallbacks()
	mw.buildToolbar()
	mw.buildUploadArea()
	mw.buildContent()
	mw.setupKeyboardShortcuts()

	window.SetOnDropped(mw.handleDrop)
	mw.restoreWindowState()
	window.SetCloseIntercept(func() {
		mw.persistWindowState()
		app.Stop()
		window.Close()
	})

	return mw
}

func (m *MainWindow) buildContent() {
	top := container.NewVBox(m.toolbar, m.uploadArea, m.status.Content())
	m.content = container.NewBorder(
		top,
		nil,
		nil,
		nil,
		m.buildMainArea(),
	)
	m.window.SetContent(m.content)
}

func (m *MainWindow) buildMainArea() fyne.CanvasObject {
	m.split = container.NewHSplit(
		m.videoList.Content(),
		m.playerPanel.Content(),
	)
	m.split.SetOffset(defaultSplit)
	return m.split
}

func (m *MainWindow) buildToolbar() {
	refreshBtn := widget.NewButton(textRefresh, m.refresh)
	quitBtn := widget.NewButton(textQuit, m.quit)

	m.toolbar = container.NewHBox(
		refreshBtn,
		quitBtn,
	)
}

func (m *MainWindow) buildUploadArea() {
	m.fileLabel = widget.NewLabel(textNoFile)
	chooseBtn := widget.NewButton(textChooseFile, m.showFileDialog)
	m.uploadArea = widget.NewCard("上传视频", "",
		container.NewHBox(widget.NewLabel(textDropHint), chooseBtn, m.fileLabel))
}

func (m *MainWindow) setupCallbacks() {
	m.videoList.OnPlay(m.playVideo)
	m.playerPanel.OnReplay(m.playVideo)
}

func (m *MainWindow) setupKeyboardShortcuts() {
	canvas := m.window.Canvas()
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyEscape:
			m.quit()
		case fyne.KeyEnter, fyne.KeyReturn:
			m.videoList.PlaySelected()
		case fyne.KeyF5:
			m.refresh()
		}
	})
}

func (m *MainWindow) Show() {
	m.window.Show()
	m.loadVideosAsync()
}

func (m *MainWindow) showFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			logging.Warn("file dialog: %v", err)
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		_ = reader.Close()
		m.uploadURIs([]fyne.URI{uri})
	}, m.window)
	fd.SetFilter(storage.NewMimeTypeFileFilter([]string{"video/*"}))
	fd.Show()
}

func (m *MainWindow) handleDrop(_ fyne.Position, uris []fyne.URI) {
	m.uploadURIs(uris)
}

func (m *MainWindow) uploadURIs(uris []fyne.URI) {
	paths := uriPaths(uris)
	if len(paths) == 0 {
		return
	}
	if uri := firstURI(uris); uri != nil {
		m.fileLabel.SetText(uri.Name())
	}
	ctrl := m.app.Controller()
	ctx := m.app.Context()
	RunAsync(func() UpdateCallback {
		_ = ctrl.Drop(ctx, paths)
		return nil
	})
}

func firstURI(uris []fyne.URI) fyne.URI {
	for _, uri := range uris {
		if uri != nil {
			return uri
		}
	}
	return nil
}

func uriPaths(uris []fyne.URI) []string {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri == nil {
			continue
		}
		if uri.Scheme() == "file" {
			paths = append(paths, uri.Path())
			continue
		}
		paths = append(paths, uri.String())
	}
	return paths
}

func (m *MainWindow) playVideo(row controller.Row) {
	ctrl := m.app.Controller()
	video := row.Video
	RunAsync(func() UpdateCallback {
		_ = ctrl.Play(video)
		return nil
	})
}

func (m *MainWindow) refresh() {
	m.loadVideosAsync()
}

func (m *MainWindow) quit() {
	m.persistWindowState()
	m.app.Stop()
	m.window.Close()
}

func (m *MainWindow) loadVideosAsync() {
	ctrl := m.app.Controller()
	ctx := m.app.Context()
	RunAsync(func() UpdateCallback {
		_ = ctrl.LoadVideos(ctx)
		return nil
	})
}

func (m *MainWindow) restoreWindowState() {
	state := windowState{Width: defaultWidth, Height: defaultHeight, Split: defaultSplit}
	if m.app.statePath != "" {
		loaded, err := loadWindowState(m.app.statePath)
		if err != nil {
			logging.Warn("load window state: %v", err)
		}
		state = loaded
	}
	m.applyWindowState(state)
}

func (m *MainWindow) persistWindowState() {
	if m.app.statePath == "" {
		return
	}
	if err := saveWindowState(m.app.statePath, m.currentWindowState()); err != nil {
		logging.Warn("save window state: %v", err)
	}
}

func (m *MainWindow) clearSelection() {
	m.fileLabel.SetText(textNoFile)
}

func (m *MainWindow) showPlayer(row controller.Row, caption string) {
	m.playerPanel.SetPlaying(row, caption)
	// A collapsed player pane is reopened so playback is visible.
	if m.split.Offset > 0.9 {
		m.split.SetOffset(defaultSplit)
	}
}
