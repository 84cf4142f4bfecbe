package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"codeberg.org/snonux/vidshare/internal/controller"
)

func videoRow(r controller.Row) table.Row {
	return table.Row{r.Glyph, r.Name, r.Size, r.Date}
}

func (m model) renderProgressLine() string {
	if !m.uploading {
		return ""
	}
	return m.progress.ViewAs(float64(m.percent)/100) + " " + statusStyle.Render(controller.UploadingLabel(m.percent))
}

func (m model) renderStatusLine() string {
	if !m.statusVisible {
		return ""
	}
	if m.statusKind == controller.StatusSuccess {
		return successStyle.Render(m.statusMessage)
	}
	return errorStyle.Render(m.statusMessage)
}

func (m model) renderList() string {
	switch m.list {
	case listLoading:
		return m.spinner.View() + " " + statusStyle.Render(controller.TextLoading)
	case listEmpty:
		return statusStyle.Render(m.listMessage)
	case listFailed:
		return errorStyle.Render(m.listMessage)
	default:
		return tableStyle.Render(m.table.View())
	}
}

func (m model) renderPlayer() string {
	if m.caption == "" {
		return playerStyle.Render(statusStyle.Render(controller.TextNoVideo))
	}
	body := highlightStyle.Render(m.caption)
	if m.playing != "" {
		body += "\n" + statusStyle.Render(m.playing)
	}
	return playerStyle.Render(body)
}

func (m model) renderUploadPrompt() string {
	var b strings.Builder
	b.WriteString("上传视频\n")
	b.WriteString("(输入或拖入文件路径, Enter 上传, Esc 取消)\n\n")
	b.WriteString(m.input.View())
	if m.inputError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.inputError))
	}
	return uploadStyle.Render(b.String())
}
