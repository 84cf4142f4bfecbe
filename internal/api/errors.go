package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotVideo is returned before any request when the file is not a video.
	ErrNotVideo = errors.New("not a video file")
	// ErrEmptyURL is returned when a descriptor carries no url.
	ErrEmptyURL = errors.New("video has no url")
)

// StatusError reports a response with an unexpected HTTP status.
type StatusError struct {
	Op     string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Op, e.Status)
}
