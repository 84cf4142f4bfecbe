// Package config resolves vidshare options from the environment and the
// command line, flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"net/url"
	"strings"

	"codeberg.org/snonux/vidshare/internal/player"
)

// DefaultServer is the address of a server started locally with defaults.
const DefaultServer = "http://localhost:8000"

// Environment variables read by FromEnv.
const (
	EnvServer     = "VIDSHARE_SERVER"
	EnvPlayer     = "VIDSHARE_PLAYER"
	EnvPlayerArgs = "VIDSHARE_PLAYER_ARGS"
	EnvLogFile    = "VIDSHARE_LOG_FILE"
)

// Options configures a vidshare run.
type Options struct {
	Server     string
	Player     string
	PlayerArgs []string
	LogFile    string
	// GUI selects the desktop window instead of the terminal UI.
	GUI bool
	// Upload, when set, uploads this file without an interactive UI.
	Upload  string
	Version bool
}

// FromEnv returns defaults overlaid with the environment.
func FromEnv(getenv func(string) string) Options {
	opts := Options{Server: DefaultServer, Player: player.DefaultCommand}
	if v := strings.TrimSpace(getenv(EnvServer)); v != "" {
		opts.Server = v
	}
	if v := strings.TrimSpace(getenv(EnvPlayer)); v != "" {
		opts.Player = v
	}
	if v := getenv(EnvPlayerArgs); v != "" {
		opts.PlayerArgs = strings.Fields(v)
	}
	opts.LogFile = strings.TrimSpace(getenv(EnvLogFile))
	return opts
}

// RegisterFlags binds the options to fs; current values become defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Server, "server", o.Server, "Video share server URL (env "+EnvServer+")")
	fs.StringVar(&o.Player, "player", o.Player, "Media player command (env "+EnvPlayer+")")
	fs.Func("player-args", "Extra player arguments, space separated (env "+EnvPlayerArgs+")", func(v string) error {
		o.PlayerArgs = strings.Fields(v)
		return nil
	})
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "Append logs to this file (env "+EnvLogFile+")")
	fs.BoolVar(&o.GUI, "gui", o.GUI, "Open the desktop window instead of the terminal UI")
	fs.StringVar(&o.Upload, "upload", o.Upload, "Upload this video and exit")
	fs.BoolVar(&o.Version, "version", false, "Print version and exit")
}

// Validate normalizes the server URL in place.
func (o *Options) Validate() error {
	server, err := NormalizeServer(o.Server)
	if err != nil {
		return err
	}
	o.Server = server
	return nil
}

// NormalizeServer adds a missing http:// scheme, drops trailing slashes and
// rejects URLs without a host.
func NormalizeServer(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("server url is empty")
	}
	if !strings.Contains(value, "://") {
		value = "http://" + value
	}
	u, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid server url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
