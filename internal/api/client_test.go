package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	if _, err := New("localhost", nil); err == nil {
		t.Fatal("expected error for url without scheme")
	}
}

func TestListVideosPreservesOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/videos" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"name":"b.mp4","size":1536,"modified":1700000000.5,"url":"/videos/b.mp4"},
			{"name":"a.mp4","size":0,"modified":1600000000,"url":"/videos/a.mp4"}
		]`)
	}))
	videos, err := c.ListVideos(context.Background())
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if len(videos) != 2 || videos[0].Name != "b.mp4" || videos[1].Name != "a.mp4" {
		t.Fatalf("unexpected videos %+v", videos)
	}
	if got := videos[0].ModTime().UnixMilli(); got != 1700000000500 {
		t.Fatalf("unexpected mod time %d", got)
	}
}

func TestListVideosNullIsEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "null")
	}))
	videos, err := c.ListVideos(context.Background())
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if videos == nil || len(videos) != 0 {
		t.Fatalf("expected empty slice, got %#v", videos)
	}
}

func TestListVideosStatusError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	_, err := c.ListVideos(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestListVideosBadJSON(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	}))
	if _, err := c.ListVideos(context.Background()); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestUploadStreamsMultipartWithProgress(t *testing.T) {
	payload := []byte(strings.Repeat("frame", 50000))
	path := writeFile(t, "clip 1.mp4", payload)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		file, header, err := r.FormFile(UploadField)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if header.Filename != "clip 1.mp4" || string(data) != string(payload) {
			http.Error(w, "mismatch", http.StatusBadRequest)
			return
		}
		if ct := header.Header.Get("Content-Type"); ct != "video/mp4" {
			http.Error(w, "bad part type "+ct, http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(UploadResult{Success: true, Message: "ok", Filename: header.Filename})
	}))

	var (
		mu      sync.Mutex
		reports [][2]int64
	)
	result, err := c.Upload(context.Background(), path, func(sent, total int64) {
		mu.Lock()
		reports = append(reports, [2]int64{sent, total})
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if result.Filename != "clip 1.mp4" || result.Message != "ok" {
		t.Fatalf("unexpected result %+v", result)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(reports) == 0 {
		t.Fatal("expected progress reports")
	}
	last := reports[len(reports)-1]
	if last[0] != last[1] {
		t.Fatalf("expected final report to be complete, got %d/%d", last[0], last[1])
	}
	for i := 1; i < len(reports); i++ {
		if reports[i][0] < reports[i-1][0] {
			t.Fatalf("progress went backwards: %v", reports)
		}
	}
}

func TestUploadRejectsNonVideoWithoutRequest(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	path := writeFile(t, "notes.txt", []byte("hello"))
	_, err := c.Upload(context.Background(), path, nil)
	if !errors.Is(err, ErrNotVideo) {
		t.Fatalf("expected ErrNotVideo, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no request, got %d", hits.Load())
	}
}

func TestUploadNon200(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		http.Error(w, "too large", http.StatusRequestEntityTooLarge)
	}))
	path := writeFile(t, "big.webm", []byte("data"))
	_, err := c.Upload(context.Background(), path, nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 status error, got %v", err)
	}
}

func TestUploadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv.Close()
	path := writeFile(t, "clip.mov", []byte("data"))
	_, err = c.Upload(context.Background(), path, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure must not be a status error: %v", err)
	}
}

func TestUploadMissingFile(t *testing.T) {
	c, err := New("http://127.0.0.1:1", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Upload(context.Background(), filepath.Join(t.TempDir(), "gone.mp4"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUploadEmptyBodyIsSuccess(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	path := writeFile(t, "clip.mkv", []byte("data"))
	result, err := c.Upload(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !result.Success || result.Filename != "clip.mkv" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestResolveURL(t *testing.T) {
	c, err := New("http://nas.local:8000/share", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.ResolveURL(Video{Name: "a", URL: "/videos/a b.mp4"})
	if err != nil {
		t.Fatalf("ResolveURL: %v", err)
	}
	if got != "http://nas.local:8000/videos/a%20b.mp4" {
		t.Fatalf("unexpected url %s", got)
	}
	got, err = c.ResolveURL(Video{Name: "b", URL: "videos/b.mp4"})
	if err != nil || got != "http://nas.local:8000/share/videos/b.mp4" {
		t.Fatalf("unexpected relative resolution %s (%v)", got, err)
	}
	if _, err := c.ResolveURL(Video{Name: "c"}); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if c.BaseURL() != "http://nas.local:8000/share/" {
		t.Fatalf("unexpected base %s", c.BaseURL())
	}
}
