package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"codeberg.org/snonux/vidshare/internal/api"
	"codeberg.org/snonux/vidshare/internal/config"
	"codeberg.org/snonux/vidshare/internal/controller"
	"codeberg.org/snonux/vidshare/internal/fsutil"
	"codeberg.org/snonux/vidshare/internal/logging"
	"codeberg.org/snonux/vidshare/internal/player"
)

// Run lists the videos, or uploads opts.Upload when set. Failures have
// already been printed to stderr when an error is returned.
func Run(ctx context.Context, opts config.Options, stdout, stderr io.Writer) error {
	if opts.LogFile != "" {
		closer, err := logging.OpenFile(opts.LogFile)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return err
		}
		defer closer.Close()
	}

	client, err := api.New(opts.Server, nil)
	if err != nil {
		err = fmt.Errorf("create client: %w", err)
		fmt.Fprintf(stderr, "%v\n", err)
		return err
	}
	view := newTextView(stdout, stderr, client.ResolveURL)
	// Delayed banner dismissal and list refresh make no sense for a
	// process that exits right after the upload.
	ctrl := controller.New(client, player.New(opts.Player, opts.PlayerArgs), view,
		controller.WithScheduler(func(time.Duration, func()) {}))

	if opts.Upload == "" {
		return ctrl.LoadVideos(ctx)
	}
	path, err := fsutil.ResolveUploadPath(opts.Upload)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return err
	}
	return ctrl.Upload(ctx, path)
}
