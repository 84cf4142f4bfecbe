package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when no upload path was entered.
var ErrEmptyPath = errors.New("no file given")

// ResolveUploadPath turns what a user typed or dropped into a terminal into
// an absolute path of an existing regular file. It accepts quoted paths,
// backslash-escaped spaces, file:// URIs and ~ or ~user prefixes.
func ResolveUploadPath(input string) (string, error) {
	value, err := normalizeUploadInput(input)
	if err != nil {
		return "", err
	}
	expanded, err := expandPath(value)
	if err != nil {
		return "", fmt.Errorf("cannot expand path %q: %w", value, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", expanded, err)
	}
	if _, err := ensureRegularFile(abs); err != nil {
		return "", err
	}
	return abs, nil
}

func normalizeUploadInput(input string) (string, error) {
	value := strings.TrimSpace(input)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '\'' || first == '"') && first == last {
			value = value[1 : len(value)-1]
		}
	}
	if strings.HasPrefix(value, "file://") {
		u, err := url.Parse(value)
		if err != nil {
			return "", fmt.Errorf("cannot parse %q: %w", value, err)
		}
		value = u.Path
	} else {
		value = strings.ReplaceAll(value, `\ `, " ")
	}
	if value == "" {
		return "", ErrEmptyPath
	}
	return value, nil
}

func ensureRegularFile(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}
	return info, nil
}

func expandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	if len(p) == 1 {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return home, nil
	}
	if p[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, p[2:]), nil
	}
	username, rest := splitUserPath(p)
	usr, err := user.Lookup(username)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return usr.HomeDir, nil
	}
	return filepath.Join(usr.HomeDir, rest), nil
}

func splitUserPath(p string) (string, string) {
	sep := strings.IndexRune(p, '/')
	if sep == -1 {
		return p[1:], ""
	}
	return p[1:sep], p[sep:]
}
