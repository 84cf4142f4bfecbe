package app

import "codeberg.org/snonux/vidshare/internal/controller"

type progressMsg struct {
	percent int
}

type progressHiddenMsg struct{}

type statusMsg struct {
	text string
	kind controller.StatusKind
}

type statusHiddenMsg struct{}

type selectionClearedMsg struct{}

type listLoadingMsg struct{}

type listEmptyMsg struct {
	text string
}

type listErrorMsg struct {
	text string
}

type videosLoadedMsg struct {
	rows []controller.Row
}

type playerMsg struct {
	row     controller.Row
	caption string
}
