package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/vidshare/internal/fsutil"
)

func (m model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showUpload {
		return m.handleUploadKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		return m.playSelection()
	case "r":
		return m, loadVideosCmd(m.ctx, m.ctrl)
	case "u", "o":
		return m.openUpload()
	default:
		return m.updateTable(msg)
	}
}

func (m model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showUpload = false
		m.inputError = ""
		m.input.Blur()
		return m, nil
	case "enter":
		return m.submitUpload()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) openUpload() (tea.Model, tea.Cmd) {
	m.showUpload = true
	m.inputError = ""
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) submitUpload() (tea.Model, tea.Cmd) {
	path, err := fsutil.ResolveUploadPath(m.input.Value())
	if err != nil {
		m.inputError = err.Error()
		return m, nil
	}
	m.showUpload = false
	m.inputError = ""
	m.input.Blur()
	return m, uploadCmd(m.ctx, m.ctrl, path)
}

func (m model) playSelection() (tea.Model, tea.Cmd) {
	if m.list != listReady || len(m.rows) == 0 {
		return m, nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return m, nil
	}
	return m, playVideoCmd(m.ctrl, m.rows[idx].Video)
}
