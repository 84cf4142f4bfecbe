package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/controller"
)

type controllerAPI interface {
	LoadVideos(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Play(video api.Video) error
}

type listState int

const (
	listLoading listState = iota
	listEmpty
	listFailed
	listReady
)

type model struct {
	ctx    context.Context
	ctrl   controllerAPI
	server string

	table       table.Model
	rows        []controller.Row
	list        listState
	listMessage string
	spinner     spinner.Model

	progress  progress.Model
	uploading bool
	percent   int

	statusMessage string
	statusKind    controller.StatusKind
	statusVisible bool

	input      textinput.Model
	showUpload bool
	inputError string

	caption string
	playing string
}

func newModel(ctx context.Context, ctrl controllerAPI, server string) model {
	return model{
		ctx:      ctx,
		ctrl:     ctrl,
		server:   server,
		table:    buildTable(),
		list:     listLoading,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		input:    buildUploadInput(),
	}
}

func buildTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: headerStyle.Render("名称"), Width: 48},
		{Title: headerStyle.Render("大小"), Width: 12},
		{Title: headerStyle.Render("日期"), Width: 14},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	tbl.SetStyles(table.DefaultStyles())
	return tbl
}

func buildUploadInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "~/Videos/clip.mp4"
	input.Prompt = "文件: "
	input.CharLimit = 4096
	input.Width = 60
	return input
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadVideosCmd(m.ctx, m.ctrl))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(typed)
	case tea.WindowSizeMsg:
		return m.handleResize(typed), nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case progressMsg:
		m.uploading = true
		m.percent = typed.percent
		return m, nil
	case progressHiddenMsg:
		m.uploading = false
		return m, nil
	case statusMsg:
		m.statusMessage = typed.text
		m.statusKind = typed.kind
		m.statusVisible = true
		return m, nil
	case statusHiddenMsg:
		m.statusVisible = false
		return m, nil
	case selectionClearedMsg:
		m.input.Reset()
		m.inputError = ""
		return m, nil
	case listLoadingMsg:
		m.list = listLoading
		return m, nil
	case listEmptyMsg:
		return m.setListMessage(listEmpty, typed.text), nil
	case listErrorMsg:
		return m.setListMessage(listFailed, typed.text), nil
	case videosLoadedMsg:
		return m.handleVideosLoaded(typed), nil
	case playerMsg:
		m.caption = typed.caption
		m.playing = typed.row.Video.URL
		return m, nil
	default:
		return m.updateTable(msg)
	}
}

func (m model) handleResize(msg tea.WindowSizeMsg) model {
	width := msg.Width - 24
	if width > 60 {
		width = 60
	}
	if width < 10 {
		width = 10
	}
	m.progress.Width = width
	height := msg.Height - 16
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
	return m
}

func (m model) setListMessage(state listState, text string) model {
	m.list = state
	m.listMessage = text
	m.rows = nil
	m.table.SetRows(nil)
	return m
}

func (m model) handleVideosLoaded(msg videosLoadedMsg) model {
	m.list = listReady
	m.listMessage = ""
	m.rows = msg.rows
	rows := make([]table.Row, 0, len(msg.rows))
	for _, r := range msg.rows {
		rows = append(rows, videoRow(r))
	}
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(0)
	}
	return m
}

func (m model) View() string {
	parts := []string{titleStyle.Render(controller.Glyph + " vidshare  " + m.server)}
	if m.showUpload {
		parts = append(parts, m.renderUploadPrompt())
	}
	if line := m.renderProgressLine(); line != "" {
		parts = append(parts, line)
	}
	if line := m.renderStatusLine(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.renderList(), m.renderPlayer(), statusStyle.Render(helpLine))
	return strings.Join(parts, "\n")
}

const helpLine = "↑/↓ 选择  •  enter 播放  •  u 上传  •  r 刷新  •  q 退出"

func (m model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	tbl, cmd := m.table.Update(msg)
	m.table = tbl
	return m, cmd
}
