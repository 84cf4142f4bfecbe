package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/config"
	"codeberg.org/snonux/vidshare/internal/controller"
	"codeberg.org/snonux/vidshare/internal/logging"
	"codeberg.org/snonux/vidshare/internal/player"
)

const appID = "org.codeberg.snonux.vidshare"

type App struct {
	fyneApp    fyne.App
	mainWindow *MainWindow
	controller *controller.Controller
	server     string
	statePath  string
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewApp(opts config.Options) (*App, error) {
	client, err := api.New(opts.Server, nil)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	fyneApp := app.NewWithID(appID)
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		fyneApp: fyneApp,
		server:  client.BaseURL(),
		ctx:     ctx,
		cancel:  cancel,
	}
	if path, err := defaultStatePath(); err == nil {
		a.statePath = path
	}
	a.mainWindow = NewMainWindow(a)
	a.controller = controller.New(client, player.New(opts.Player, opts.PlayerArgs), newWindowView(a.mainWindow))
	return a, nil
}

// Run shows the window and blocks until it is closed.
func Run(opts config.Options) error {
	if opts.LogFile != "" {
		closer, err := logging.OpenFile(opts.LogFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	}
	a, err := NewApp(opts)
	if err != nil {
		return err
	}
	a.Run()
	return nil
}

func (a *App) Run() {
	a.mainWindow.Show()
	a.fyneApp.Run()
}

func (a *App) Stop() {
	a.cancel()
}

func (a *App) Context() context.Context {
	return a.ctx
}

func (a *App) Controller() *controller.Controller {
	return a.controller
}
