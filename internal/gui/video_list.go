package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/vidshare/internal/controller"
)

// VideoList renders the server's videos in the order they were received,
// or a single message while loading, when empty or after a failure.
type VideoList struct {
	container *fyne.Container
	list      *widget.List
	message   *widget.Label
	rows      []controller.Row
	selected  int
	onPlay    func(controller.Row)
}

func NewVideoList() *VideoList {
	list := widget.NewList(
		func() int { return 0 },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel(controller.Glyph),
				widget.NewLabel("Video"),
				widget.NewLabel(""),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {},
	)
	message := widget.NewLabel("")
	message.Alignment = fyne.TextAlignCenter
	message.Wrapping = fyne.TextWrapWord

	vl := &VideoList{
		container: container.NewStack(list, message),
		list:      list,
		message:   message,
		selected:  -1,
	}

	list.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(vl.rows) {
			return
		}
		vl.selected = id
		if vl.onPlay != nil {
			vl.onPlay(vl.rows[id])
		}
		// Unselect so tapping the same row again plays it again.
		vl.list.Unselect(id)
	}
	vl.refreshList()
	return vl
}

func (vl *VideoList) Content() fyne.CanvasObject {
	return vl.container
}

// SetRows replaces the list contents.
func (vl *VideoList) SetRows(rows []controller.Row) {
	vl.rows = rows
	vl.selected = -1
	vl.list.UnselectAll()
	vl.message.Hide()
	vl.list.Show()
	vl.refreshList()
}

// SetMessage clears the list and shows text in its place.
func (vl *VideoList) SetMessage(text string) {
	vl.rows = nil
	vl.selected = -1
	vl.list.UnselectAll()
	vl.refreshList()
	vl.list.Hide()
	vl.message.SetText(text)
	vl.message.Show()
}

func (vl *VideoList) Message() string {
	if !vl.message.Visible() {
		return ""
	}
	return vl.message.Text
}

func (vl *VideoList) Rows() []controller.Row {
	return vl.rows
}

func (vl *VideoList) refreshList() {
	vl.list.Length = func() int { return len(vl.rows) }
	vl.list.UpdateItem = func(id widget.ListItemID, item fyne.CanvasObject) {
		if id >= len(vl.rows) {
			return
		}
		row := vl.rows[id]
		hbox, ok := item.(*fyne.Container)
		if !ok || len(hbox.Objects) < 4 {
			return
		}
		texts := []string{row.Glyph, row.Name, row.Size, row.Date}
		for i, text := range texts {
			if label, ok := hbox.Objects[i].(*widget.Label); ok {
				label.SetText(text)
			}
		}
	}
	vl.list.Refresh()
}

func (vl *VideoList) OnPlay(f func(controller.Row)) {
	vl.onPlay = f
}

// Select activates the row at index as if it had been tapped.
func (vl *VideoList) Select(index int) {
	if index >= 0 && index < len(vl.rows) {
		vl.list.Select(index)
	}
}

func (vl *VideoList) PlaySelected() {
	if vl.selected >= 0 && vl.selected < len(vl.rows) && vl.onPlay != nil {
		vl.onPlay(vl.rows[vl.selected])
	}
}

func (vl *VideoList) Selected() (controller.Row, bool) {
	if vl.selected >= 0 && vl.selected < len(vl.rows) {
		return vl.rows[vl.selected], true
	}
	return controller.Row{}, false
}
