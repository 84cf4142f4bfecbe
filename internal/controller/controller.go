// Package controller holds the client flows shared by every frontend:
// validating and uploading a file with progress, fetching and rendering the
// video list, and starting playback.
package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/format"
	"codeberg.org/snonux/vidshare/internal/logging"
)

const (
	// SuccessDismissDelay is how long the success banner stays up.
	SuccessDismissDelay = 5 * time.Second
	// RefreshDelay separates a successful upload from the list refresh.
	RefreshDelay = time.Second
)

// ErrUploadInFlight is returned when an upload is requested while another
// one is still running.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// Service is the server API the controller needs.
type Service interface {
	ListVideos(ctx context.Context) ([]api.Video, error)
	Upload(ctx context.Context, path string, progress api.ProgressFunc) (*api.UploadResult, error)
	ResolveURL(v api.Video) (string, error)
}

// Player opens a video URL.
type Player interface {
	Play(target string) error
}

// Scheduler runs fn after d.
type Scheduler func(d time.Duration, fn func())

// Option customises a Controller.
type Option func(*Controller)

// WithScheduler replaces time.AfterFunc for the delayed banner dismissal and
// list refresh.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.after = s }
}

// WithClock replaces time.Now when rendering relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller wires the server API, a player and a View together.
type Controller struct {
	svc    Service
	player Player
	view   View
	after  Scheduler
	now    func() time.Time

	uploading atomic.Bool
	statusGen atomic.Uint64

	mu      sync.Mutex
	current *api.Video
}

// New returns a controller driving view.
func New(svc Service, player Player, view View, opts ...Option) *Controller {
	c := &Controller{
		svc:    svc,
		player: player,
		view:   view,
		after:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Drop uploads the first of the dropped files.
func (c *Controller) Drop(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	return c.Upload(ctx, paths[0])
}

// Upload validates and sends the file at path, rendering progress and the
// outcome. The returned error has already been shown to the user.
func (c *Controller) Upload(ctx context.Context, path string) error {
	if !api.IsVideo(path) {
		logging.Warn("rejected upload of %s (%s)", path, api.MimeType(path))
		c.showStatus(TextInvalidType, StatusError)
		return fmt.Errorf("%s: %w", filepath.Base(path), api.ErrNotVideo)
	}
	if !c.uploading.CompareAndSwap(false, true) {
		c.showStatus(TextUploadBusy, StatusError)
		return ErrUploadInFlight
	}
	defer c.uploading.Store(false)

	c.hideStatus()
	c.view.ShowProgress(0)
	last := 0
	_, err := c.svc.Upload(ctx, path, func(sent, total int64) {
		pct := percent(sent, total)
		if pct == last {
			return
		}
		last = pct
		c.view.ShowProgress(pct)
	})
	c.view.HideProgress()

	if err != nil {
		logging.Warn("upload %s failed: %v", path, err)
		c.showStatus(uploadFailureText(err), StatusError)
		return err
	}

	logging.Info("uploaded %s", path)
	gen := c.showStatus(TextUploadSuccess, StatusSuccess)
	c.view.ClearSelection()
	c.after(SuccessDismissDelay, func() { c.hideStatusIf(gen) })
	refreshCtx := context.WithoutCancel(ctx)
	c.after(RefreshDelay, func() { _ = c.LoadVideos(refreshCtx) })
	return nil
}

func uploadFailureText(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return TextUploadFailed
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return TextNetworkError
	}
	return UploadError(err)
}

// LoadVideos fetches the list and renders it, or renders why it could not.
func (c *Controller) LoadVideos(ctx context.Context) error {
	c.view.ShowLoading()
	videos, err := c.svc.ListVideos(ctx)
	if err != nil {
		logging.Warn("load videos: %v", err)
		c.view.ShowListError(LoadFailed(err))
		return err
	}
	if len(videos) == 0 {
		c.view.ShowEmpty(TextEmpty)
		return nil
	}
	c.view.ShowVideos(c.Rows(videos))
	return nil
}

// Rows renders descriptors in their given order.
func (c *Controller) Rows(videos []api.Video) []Row {
	now := c.now()
	rows := make([]Row, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, renderRow(v, now))
	}
	return rows
}

func renderRow(v api.Video, now time.Time) Row {
	return Row{
		Video: v,
		Glyph: Glyph,
		Name:  v.Name,
		Size:  format.FileSize(v.Size),
		Date:  format.Age(v.ModTime(), now),
	}
}

// Play makes v the current video and hands it to the player. Start failures
// are logged only; the returned error is for callers that care.
func (c *Controller) Play(v api.Video) error {
	c.mu.Lock()
	selected := v
	c.current = &selected
	c.mu.Unlock()

	target, resolveErr := c.svc.ResolveURL(v)
	c.view.ShowPlayer(renderRow(v, c.now()), Caption(v))
	if resolveErr != nil {
		logging.Error("播放失败: %v", resolveErr)
		return resolveErr
	}
	logging.Debug("playing %s", target)
	if err := c.player.Play(target); err != nil {
		logging.Error("播放失败: %s: %v", v.Name, err)
		return err
	}
	return nil
}

// Current returns the video most recently passed to Play.
func (c *Controller) Current() (api.Video, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return api.Video{}, false
	}
	return *c.current, true
}

// Uploading reports whether an upload is in flight.
func (c *Controller) Uploading() bool {
	return c.uploading.Load()
}

func (c *Controller) showStatus(text string, kind StatusKind) uint64 {
	gen := c.statusGen.Add(1)
	c.view.ShowStatus(text, kind)
	return gen
}

func (c *Controller) hideStatus() {
	c.statusGen.Add(1)
	c.view.HideStatus()
}

// hideStatusIf hides the banner unless a newer one replaced it.
func (c *Controller) hideStatusIf(gen uint64) {
	if c.statusGen.CompareAndSwap(gen, gen+1) {
		c.view.HideStatus()
	}
}

func percent(sent, total int64) int {
	if total <= 0 {
		return 100
	}
	pct := int(math.Round(float64(sent) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
