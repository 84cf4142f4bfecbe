// Package player hands a video URL to an external media player.
package player

import (
	"errors"
	"os/exec"
	"strings"
)

// DefaultCommand is used when no player is configured.
const DefaultCommand = "vlc"

// ErrNoCommand is returned when the launcher has no player command.
var ErrNoCommand = errors.New("no player command configured")

// Launcher starts Command with Args followed by the video URL.
type Launcher struct {
	Command string
	Args    []string

	start func(*exec.Cmd) error
}

// New returns a launcher for command; an empty command means DefaultCommand.
func New(command string, args []string) *Launcher {
	command = strings.TrimSpace(command)
	if command == "" {
		command = DefaultCommand
	}
	return &Launcher{Command: command, Args: append([]string(nil), args...)}
}

// Play starts the player detached and returns once it has been spawned.
func (l *Launcher) Play(target string) error {
	if l == nil || l.Command == "" {
		return ErrNoCommand
	}
	cmd := exec.Command(l.Command, buildArgs(l.Args, target)...)
	start := l.start
	if start == nil {
		start = startDetached
	}
	return start(cmd)
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func buildArgs(extra []string, target string) []string {
	args := append([]string{}, extra...)
	return append(args, target)
}
