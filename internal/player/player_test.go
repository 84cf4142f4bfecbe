package player

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestNewDefaultsToVLC(t *testing.T) {
	l := New("  ", nil)
	if l.Command != DefaultCommand {
		t.Fatalf("expected %s, got %s", DefaultCommand, l.Command)
	}
}

func TestBuildArgs(t *testing.T) {
	extra := []string{"--fullscreen"}
	got := buildArgs(extra, "http://host/videos/a.mp4")
	want := []string{"--fullscreen", "http://host/videos/a.mp4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(extra) != 1 {
		t.Fatalf("extra args mutated: %v", extra)
	}
}

func TestPlayUsesCommandAndArgs(t *testing.T) {
	l := New("mpv", []string{"--force-window"})
	var started *exec.Cmd
	l.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}
	if err := l.Play("http://host/v.webm"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := []string{"mpv", "--force-window", "http://host/v.webm"}
	if started == nil || !reflect.DeepEqual(started.Args, want) {
		t.Fatalf("unexpected command %v", started)
	}
}

func TestPlayPropagatesStartError(t *testing.T) {
	l := New("vlc", nil)
	errStart := errors.New("not found")
	l.start = func(*exec.Cmd) error { return errStart }
	if err := l.Play("x"); !errors.Is(err, errStart) {
		t.Fatalf("expected start error, got %v", err)
	}
}

func TestPlayMissingBinary(t *testing.T) {
	l := New("vidshare-player-that-does-not-exist", nil)
	if err := l.Play("x"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestPlayWithoutCommand(t *testing.T) {
	var l *Launcher
	if err := l.Play("x"); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
	if err := (&Launcher{}).Play("x"); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand for empty launcher, got %v", err)
	}
}
