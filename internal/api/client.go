package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/vidshare/internal/logging"
)

const (
	uploadPath = "/api/upload"
	listPath   = "/api/videos"
	// UploadField is the multipart form field the server reads the file from.
	UploadField = "video"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Client talks to a video-sharing server.
type Client struct {
	base *url.URL
	http *http.Client
}

// New returns a client for the server at baseURL. A nil hc uses a client
// without timeouts; requests are bounded only by their context.
func New(baseURL string, hc *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("server url %q needs a scheme and host", baseURL)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: base, http: hc}, nil
}

// BaseURL returns the server root the client resolves paths against.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string) string {
	return c.base.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
}

// ResolveURL turns a descriptor url, usually server-relative, into an
// absolute one the player can open.
func (c *Client) ResolveURL(v Video) (string, error) {
	if strings.TrimSpace(v.URL) == "" {
		return "", fmt.Errorf("%s: %w", v.Name, ErrEmptyURL)
	}
	ref, err := url.Parse(v.URL)
	if err != nil {
		return "", fmt.Errorf("parse video url %q: %w", v.URL, err)
	}
	return c.base.ResolveReference(ref).String(), nil
}

// ListVideos fetches the descriptors the server currently holds, in server
// order.
func (c *Client) ListVideos(ctx context.Context) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(listPath), nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	logging.Debug("GET %s", req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "list videos", Code: resp.StatusCode, Status: resp.Status}
	}
	var videos []Video
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return nil, fmt.Errorf("decode video list: %w", err)
	}
	if videos == nil {
		videos = []Video{}
	}
	return videos, nil
}

// Upload sends the file at path as multipart form data. progress, when set,
// sees every chunk written to the connection and ends with sent == total.
// Files whose declared type is not video/* are refused without a request.
func (c *Client) Upload(ctx context.Context, path string, progress ProgressFunc) (*UploadResult, error) {
	if !IsVideo(path) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotVideo)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}

	head, tail, contentType, err := multipartFrame(filepath.Base(path), MimeType(path))
	if err != nil {
		return nil, err
	}
	total := int64(len(head)) + info.Size() + int64(len(tail))
	body := newProgressReader(io.MultiReader(bytes.NewReader(head), f, bytes.NewReader(tail)), total, progress)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(uploadPath), body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	logging.Debug("POST %s (%d bytes)", req.URL, total)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "upload", Code: resp.StatusCode, Status: resp.Status}
	}

	result := &UploadResult{Success: true, Filename: filepath.Base(path)}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil && err != io.EOF {
		logging.Debug("upload response is not JSON: %v", err)
	}
	return result, nil
}

// multipartFrame renders everything of a single-file multipart body except
// the file bytes, so the request length is known before streaming.
func multipartFrame(filename, fileType string) (head, tail []byte, contentType string, err error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		UploadField, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", fileType)
	if _, err := mw.CreatePart(header); err != nil {
		return nil, nil, "", fmt.Errorf("write multipart header: %w", err)
	}
	headLen := buf.Len()
	if err := mw.Close(); err != nil {
		return nil, nil, "", fmt.Errorf("write multipart trailer: %w", err)
	}
	all := buf.Bytes()
	head = append([]byte(nil), all[:headLen]...)
	tail = append([]byte(nil), all[headLen:]...)
	return head, tail, mw.FormDataContentType(), nil
}
