package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/config"
	"codeberg.org/snonux/vidshare/internal/controller"
	"codeberg.org/snonux/vidshare/internal/logging"
	"codeberg.org/snonux/vidshare/internal/player"
)

type teaProgram interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

var programFactory = func(m tea.Model) teaProgram {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Run bootstraps the Bubble Tea program with the provided options.
func Run(opts config.Options) error {
	closeLog, err := setupLogging(opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := api.New(opts.Server, nil)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	view := &teaView{}
	ctrl := controller.New(client, player.New(opts.Player, opts.PlayerArgs), view)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := programFactory(newModel(ctx, ctrl, client.BaseURL()))
	view.bind(program.Send)
	defer view.bind(nil)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// setupLogging keeps log lines off the alternate screen: they go to path
// when given, otherwise nowhere.
func setupLogging(path string) (func(), error) {
	restore := func() { logging.SetOutput(os.Stderr) }
	if path == "" {
		logging.SetOutput(io.Discard)
		return restore, nil
	}
	f, err := tea.LogToFile(path, "vidshare")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
