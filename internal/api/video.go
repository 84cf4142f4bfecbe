package api

import (
	"math"
	"time"
)

// Video is one descriptor returned by the list endpoint.
type Video struct {
	Name     string  `json:"name"`
	Size     int64   `json:"size"`
	Modified float64 `json:"modified"`
	URL      string  `json:"url"`
}

// ModTime converts the fractional unix seconds in Modified.
func (v Video) ModTime() time.Time {
	sec, frac := math.Modf(v.Modified)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// UploadResult is the body the server sends back on a successful upload.
type UploadResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
