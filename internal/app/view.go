package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/vidshare/internal/controller"
)

// teaView turns controller callbacks into messages for the running program.
// Messages sent before bind or after unbinding are dropped.
type teaView struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

var _ controller.View = (*teaView)(nil)

func (v *teaView) bind(send func(tea.Msg)) {
	v.mu.Lock()
	v.send = send
	v.mu.Unlock()
}

func (v *teaView) emit(msg tea.Msg) {
	v.mu.RLock()
	send := v.send
	v.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (v *teaView) ShowProgress(percent int)  { v.emit(progressMsg{percent: percent}) }
func (v *teaView) HideProgress()             { v.emit(progressHiddenMsg{}) }
func (v *teaView) HideStatus()               { v.emit(statusHiddenMsg{}) }
func (v *teaView) ClearSelection()           { v.emit(selectionClearedMsg{}) }
func (v *teaView) ShowLoading()              { v.emit(listLoadingMsg{}) }
func (v *teaView) ShowEmpty(text string)     { v.emit(listEmptyMsg{text: text}) }
func (v *teaView) ShowListError(text string) { v.emit(listErrorMsg{text: text}) }

func (v *teaView) ShowStatus(text string, kind controller.StatusKind) {
	v.emit(statusMsg{text: text, kind: kind})
}

func (v *teaView) ShowVideos(rows []controller.Row) {
	v.emit(videosLoadedMsg{rows: append([]controller.Row(nil), rows...)})
}

func (v *teaView) ShowPlayer(row controller.Row, caption string) {
	v.emit(playerMsg{row: row, caption: caption})
}
