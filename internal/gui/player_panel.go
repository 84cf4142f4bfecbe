package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/vidshare/internal/controller"
)

// PlayerPanel shows either the "no video" placeholder or the caption of the
// video handed to the external player.
type PlayerPanel struct {
	container   *fyne.Container
	card        *widget.Card
	placeholder *widget.Label
	caption     *widget.Label
	urlLabel    *widget.Label
	replayBtn   *widget.Button
	row         *controller.Row
	onReplay    func(controller.Row)
}

func NewPlayerPanel() *PlayerPanel {
	placeholder := widget.NewLabel(controller.TextNoVideo)
	caption := widget.NewLabel("")
	caption.TextStyle = fyne.TextStyle{Bold: true}
	caption.Wrapping = fyne.TextWrapWord
	urlLabel := widget.NewLabel("")
	urlLabel.Wrapping = fyne.TextWrapBreak
	replayBtn := widget.NewButton("▶ 重新播放", nil)

	content := container.NewVBox(placeholder, caption, urlLabel, replayBtn)
	card := widget.NewCard("播放器", "", content)

	p := &PlayerPanel{
		container:   container.NewVBox(card),
		card:        card,
		placeholder: placeholder,
		caption:     caption,
		urlLabel:    urlLabel,
		replayBtn:   replayBtn,
	}
	p.replayBtn.OnTapped = p.replay
	p.updateUI()
	return p
}

func (p *PlayerPanel) Content() fyne.CanvasObject {
	return p.container
}

func (p *PlayerPanel) SetPlaying(row controller.Row, caption string) {
	p.row = &row
	p.caption.SetText(caption)
	p.urlLabel.SetText(row.Video.URL)
	p.updateUI()
}

func (p *PlayerPanel) updateUI() {
	if p.row == nil {
		p.placeholder.Show()
		p.caption.Hide()
		p.urlLabel.Hide()
		p.replayBtn.Hide()
		return
	}
	p.placeholder.Hide()
	p.caption.Show()
	p.urlLabel.Show()
	p.replayBtn.Show()
}

func (p *PlayerPanel) replay() {
	if p.onReplay != nil && p.row != nil {
		p.onReplay(*p.row)
	}
}

func (p *PlayerPanel) OnReplay(f func(controller.Row)) {
	p.onReplay = f
}
