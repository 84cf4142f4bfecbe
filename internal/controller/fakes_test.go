package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/vidshare/internal/api"
)

type recordingView struct {
	mu     sync.Mutex
	events []string
	rows   []Row
}

func (v *recordingView) record(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, fmt.Sprintf(format, args...))
}

func (v *recordingView) Events() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

func (v *recordingView) Has(prefix string) bool {
	return v.Index(prefix) >= 0
}

func (v *recordingView) Index(prefix string) int {
	for i, e := range v.Events() {
		if strings.HasPrefix(e, prefix) {
			return i
		}
	}
	return -1
}

func (v *recordingView) ShowProgress(percent int)     { v.record("progress %d", percent) }
func (v *recordingView) HideProgress()                { v.record("progress hidden") }
func (v *recordingView) HideStatus()                  { v.record("status hidden") }
func (v *recordingView) ClearSelection()              { v.record("selection cleared") }
func (v *recordingView) ShowLoading()                 { v.record("loading") }
func (v *recordingView) ShowEmpty(text string)        { v.record("empty %s", text) }
func (v *recordingView) ShowListError(text string)    { v.record("list error %s", text) }
func (v *recordingView) ShowPlayer(row Row, c string) { v.record("player %s|%s", row.Name, c) }

func (v *recordingView) ShowStatus(text string, kind StatusKind) {
	v.record("status %s %s", kind, text)
}

func (v *recordingView) ShowVideos(rows []Row) {
	v.mu.Lock()
	v.rows = append([]Row(nil), rows...)
	v.mu.Unlock()
	v.record("videos %d", len(rows))
}

type fakeService struct {
	mu          sync.Mutex
	videos      []api.Video
	listErr     error
	uploadErr   error
	steps       [][2]int64
	block       chan struct{}
	started     chan struct{}
	uploadCalls int
	listCalls   int
}

func (s *fakeService) ListVideos(ctx context.Context) ([]api.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return s.videos, s.listErr
}

func (s *fakeService) Upload(ctx context.Context, path string, progress api.ProgressFunc) (*api.UploadResult, error) {
	s.mu.Lock()
	s.uploadCalls++
	steps := s.steps
	block, started := s.block, s.started
	s.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	for _, step := range steps {
		progress(step[0], step[1])
	}
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &api.UploadResult{Success: true}, nil
}

func (s *fakeService) ResolveURL(v api.Video) (string, error) {
	if v.URL == "" {
		return "", api.ErrEmptyURL
	}
	return "http://server" + v.URL, nil
}

func (s *fakeService) counts() (uploads, lists int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadCalls, s.listCalls
}

type fakePlayer struct {
	targets []string
	err     error
}

func (p *fakePlayer) Play(target string) error {
	p.targets = append(p.targets, target)
	return p.err
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

type manualScheduler struct {
	mu    sync.Mutex
	tasks []scheduled
}

func (m *manualScheduler) schedule(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, scheduled{delay: d, fn: fn})
}

func (m *manualScheduler) run(d time.Duration) bool {
	m.mu.Lock()
	var fn func()
	for _, task := range m.tasks {
		if task.delay == d {
			fn = task.fn
			break
		}
	}
	m.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (m *manualScheduler) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
