package controller

import "codeberg.org/snonux/vidshare/internal/api"

// StatusKind selects how a status banner is styled and whether it dismisses
// itself.
type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusError
)

func (k StatusKind) String() string {
	if k == StatusSuccess {
		return "success"
	}
	return "error"
}

// Row is one rendered entry of the video list.
type Row struct {
	Video api.Video
	Glyph string
	Name  string
	Size  string
	Date  string
}

// View is the surface the controller drives. Implementations must accept
// calls from any goroutine; delayed actions run on timer goroutines.
type View interface {
	ShowProgress(percent int)
	HideProgress()
	ShowStatus(text string, kind StatusKind)
	HideStatus()
	// ClearSelection resets the file input after a successful upload.
	ClearSelection()

	ShowLoading()
	ShowEmpty(text string)
	ShowListError(text string)
	ShowVideos(rows []Row)

	// ShowPlayer swaps the placeholder for the player, sets its caption and
	// brings it into view.
	ShowPlayer(row Row, caption string)
}
