package config

import (
	"flag"
	"io"
	"reflect"
	"testing"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	opts := FromEnv(envMap(nil))
	if opts.Server != DefaultServer || opts.Player != "vlc" {
		t.Fatalf("unexpected defaults %+v", opts)
	}
	if opts.PlayerArgs != nil || opts.LogFile != "" || opts.GUI {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	opts := FromEnv(envMap(map[string]string{
		EnvServer:     " nas.local:8000 ",
		EnvPlayer:     "mpv",
		EnvPlayerArgs: "--fs  --mute",
		EnvLogFile:    "/tmp/vidshare.log",
	}))
	if opts.Server != "nas.local:8000" || opts.Player != "mpv" || opts.LogFile != "/tmp/vidshare.log" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !reflect.DeepEqual(opts.PlayerArgs, []string{"--fs", "--mute"}) {
		t.Fatalf("unexpected player args %v", opts.PlayerArgs)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	opts := FromEnv(envMap(map[string]string{EnvServer: "http://env:1"}))
	fs := flag.NewFlagSet("vidshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts.RegisterFlags(fs)
	err := fs.Parse([]string{"--server", "http://flag:2", "--player-args", "--loop", "--gui", "--upload", "a.mp4"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Server != "http://flag:2" || !opts.GUI || opts.Upload != "a.mp4" || opts.Player != "vlc" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !reflect.DeepEqual(opts.PlayerArgs, []string{"--loop"}) {
		t.Fatalf("unexpected player args %v", opts.PlayerArgs)
	}
}

func TestNormalizeServer(t *testing.T) {
	cases := map[string]string{
		"localhost:8000":               "http://localhost:8000",
		"http://nas.local:8000/":       "http://nas.local:8000",
		"https://share.example/v/?x=1": "https://share.example/v",
	}
	for in, want := range cases {
		got, err := NormalizeServer(in)
		if err != nil {
			t.Fatalf("NormalizeServer(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeServer(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"", "   ", "ftp://host", "http://"} {
		if _, err := NormalizeServer(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestValidateNormalizesInPlace(t *testing.T) {
	opts := Options{Server: "host:9000/"}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if opts.Server != "http://host:9000" {
		t.Fatalf("unexpected server %s", opts.Server)
	}
}
