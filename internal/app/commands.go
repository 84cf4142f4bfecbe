package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/vidshare/internal/api"
)

// The controller reports through teaView, so these commands produce no
// message of their own.

func loadVideosCmd(ctx context.Context, ctrl controllerAPI) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.LoadVideos(ctx)
		return nil
	}
}

func uploadCmd(ctx context.Context, ctrl controllerAPI, path string) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.Upload(ctx, path)
		return nil
	}
}

func playVideoCmd(ctrl controllerAPI, video api.Video) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.Play(video)
		return nil
	}
}
