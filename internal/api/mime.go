package api

import (
	"mime"
	"path/filepath"
	"strings"
)

// The standard library's built-in table has no video types, and the system
// tables differ between hosts.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".webm": "video/webm",
	".ogg":  "video/ogg",
	".ogv":  "video/ogg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".3gp":  "video/3gpp",
	".ts":   "video/mp2t",
}

// MimeType returns the declared content type of path, derived from its
// extension.
func MimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// IsVideo reports whether the declared type of path starts with video/.
func IsVideo(path string) bool {
	return strings.HasPrefix(MimeType(path), "video/")
}
