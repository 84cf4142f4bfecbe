package cli

import (
	"fmt"
	"io"
	"sync"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/controller"
	"codeberg.org/snonux/vidshare/internal/logging"
)

const progressWidth = 30

type resolveFunc func(api.Video) (string, error)

// textView prints controller updates as lines. Errors go to errOut.
type textView struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	resolve resolveFunc
}

var _ controller.View = (*textView)(nil)

func newTextView(out, errOut io.Writer, resolve resolveFunc) *textView {
	return &textView{out: out, errOut: errOut, resolve: resolve}
}

func (v *textView) printf(w io.Writer, format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(w, format, args...)
}

func (v *textView) ShowProgress(percent int) {
	v.printf(v.out, "%s %s\n", renderProgressBar(percent, 100, progressWidth), controller.UploadingLabel(percent))
}

func (v *textView) HideProgress() {}

func (v *textView) ShowStatus(text string, kind controller.StatusKind) {
	if kind == controller.StatusError {
		v.printf(v.errOut, "%s\n", text)
		return
	}
	v.printf(v.out, "%s\n", text)
}

func (v *textView) HideStatus() {}

func (v *textView) ClearSelection() {}

func (v *textView) ShowLoading() {}

func (v *textView) ShowEmpty(text string) {
	v.printf(v.out, "%s\n", text)
}

func (v *textView) ShowListError(text string) {
	v.printf(v.errOut, "%s\n", text)
}

func (v *textView) ShowVideos(rows []controller.Row) {
	urls := make([]string, len(rows))
	for i, row := range rows {
		url, err := v.resolve(row.Video)
		if err != nil {
			logging.Warn("resolve url for %s: %v", row.Name, err)
			url = row.Video.URL
		}
		urls[i] = url
	}
	v.printf(v.out, "%s", renderList(rows, urls))
}

func (v *textView) ShowPlayer(_ controller.Row, caption string) {
	v.printf(v.out, "%s\n", caption)
}
