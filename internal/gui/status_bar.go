package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/vidshare/internal/controller"
)

// StatusBar holds the upload progress bar, its label and the status banner.
type StatusBar struct {
	progress      *widget.ProgressBar
	progressLabel *widget.Label
	banner        *widget.Label
	content       fyne.CanvasObject
}

func NewStatusBar() *StatusBar {
	progress := widget.NewProgressBar()
	progress.Max = 100
	progress.TextFormatter = func() string { return "" }
	progressLabel := widget.NewLabel("")
	banner := widget.NewLabel("")
	banner.Wrapping = fyne.TextWrapWord

	s := &StatusBar{
		progress:      progress,
		progressLabel: progressLabel,
		banner:        banner,
		content:       container.NewVBox(progress, progressLabel, banner),
	}
	s.HideProgress()
	s.HideStatus()
	return s
}

func (s *StatusBar) Content() fyne.CanvasObject {
	return s.content
}

func (s *StatusBar) SetProgress(percent int) {
	s.progress.SetValue(float64(percent))
	s.progressLabel.SetText(controller.UploadingLabel(percent))
	s.progress.Show()
	s.progressLabel.Show()
}

func (s *StatusBar) HideProgress() {
	s.progress.Hide()
	s.progressLabel.Hide()
}

func (s *StatusBar) ShowStatus(text string, kind controller.StatusKind) {
	s.banner.Importance = widget.DangerImportance
	if kind == controller.StatusSuccess {
		s.banner.Importance = widget.SuccessImportance
	}
	s.banner.SetText(text)
	s.banner.Show()
}

func (s *StatusBar) HideStatus() {
	s.banner.Hide()
}
