package gui

import (
	"fyne.io/fyne/v2"

	"codeberg.org/snonux/vidshare/internal/controller"
)

// windowView adapts the main window to controller.View. Every call is
// marshalled onto the UI goroutine.
type windowView struct {
	mw *MainWindow
}

var _ controller.View = (*windowView)(nil)

func newWindowView(mw *MainWindow) *windowView {
	return &windowView{mw: mw}
}

func (v *windowView) ShowProgress(percent int) {
	fyne.Do(func() { v.mw.status.SetProgress(percent) })
}

func (v *windowView) HideProgress() {
	fyne.Do(v.mw.status.HideProgress)
}

func (v *windowView) ShowStatus(text string, kind controller.StatusKind) {
	fyne.Do(func() { v.mw.status.ShowStatus(text, kind) })
}

func (v *windowView) HideStatus() {
	fyne.Do(v.mw.status.HideStatus)
}

func (v *windowView) ClearSelection() {
	fyne.Do(v.mw.clearSelection)
}

func (v *windowView) ShowLoading() {
	fyne.Do(func() { v.mw.videoList.SetMessage(controller.TextLoading) })
}

func (v *windowView) ShowEmpty(text string) {
	fyne.Do(func() { v.mw.videoList.SetMessage(text) })
}

func (v *windowView) ShowListError(text string) {
	fyne.Do(func() { v.mw.videoList.SetMessage(text) })
}

func (v *windowView) ShowVideos(rows []controller.Row) {
	fyne.Do(func() { v.mw.videoList.SetRows(rows) })
}

func (v *windowView) ShowPlayer(row controller.Row, caption string) {
	fyne.Do(func() { v.mw.showPlayer(row, caption) })
}
