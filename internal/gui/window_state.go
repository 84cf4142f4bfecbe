package gui

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	stateDirName    = "vidshare"
	windowStateFile = "window.json"
	defaultWidth    = 1100
	defaultHeight   = 720
	defaultSplit    = 0.55
)

type windowState struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Split  float64 `json:"split"`
}

var userConfigDir = os.UserConfigDir

func defaultStatePath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateDirName, windowStateFile), nil
}

func saveWindowState(path string, state windowState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// loadWindowState returns the defaults when no state has been saved yet.
// Out-of-range values are replaced by their defaults.
func loadWindowState(path string) (windowState, error) {
	state := windowState{Width: defaultWidth, Height: defaultHeight, Split: defaultSplit}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return state, err
	}

	var saved windowState
	if err := json.Unmarshal(data, &saved); err != nil {
		return state, err
	}
	if saved.Width > 0 && saved.Height > 0 {
		state.Width, state.Height = saved.Width, saved.Height
	}
	if saved.Split > 0 && saved.Split < 1 {
		state.Split = saved.Split
	}
	return state, nil
}

func (mw *MainWindow) applyWindowState(state windowState) {
	mw.window.Resize(fyne.NewSize(float32(state.Width), float32(state.Height)))
	mw.split.SetOffset(state.Split)
}

func (mw *MainWindow) currentWindowState() windowState {
	size := mw.window.Canvas().Size()
	return windowState{
		Width:  float64(size.Width),
		Height: float64(size.Height),
		Split:  mw.split.Offset,
	}
}
