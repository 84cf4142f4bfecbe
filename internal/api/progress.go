package api

import "io"

// ProgressFunc receives the number of request bytes sent so far and the total.
type ProgressFunc func(sent, total int64)

// progressReader counts bytes as the transport reads the request body.
// Read is only called from the transport's writer goroutine.
type progressReader struct {
	r        io.Reader
	sent     int64
	total    int64
	progress ProgressFunc
}

func newProgressReader(r io.Reader, total int64, progress ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, progress: progress}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.sent += int64(n)
		if p.progress != nil {
			p.progress(p.sent, p.total)
		}
	}
	return n, err
}
