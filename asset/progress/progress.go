// Package progress renders a single updating status line for the asset
// currently being downloaded.
package progress

import (
	"fmt"
	"io"
)

type Progress struct {
	writer      io.Writer
	name        string
	current     int64
	total       int64
	lastPercent int
}

func New(writer io.Writer) *Progress {
	return &Progress{writer: writer}
}

// Start begins reporting for one asset. total is the expected byte
// count, or <= 0 when the server did not send a Content-Length.
func (p *Progress) Start(name string, total int64) {
	p.name = name
	p.current = 0
	p.total = total
	p.lastPercent = -1
	p.display()
}

// Write counts bytes as they stream through, so Progress can sit on the
// response body via io.TeeReader.
func (p *Progress) Write(b []byte) (int, error) {
	p.current += int64(len(b))
	p.display()
	return len(b), nil
}

// End terminates the status line.
func (p *Progress) End() {
	fmt.Fprintf(p.writer, "\r\n")
}

func (p *Progress) display() {
	if p.total <= 0 {
		fmt.Fprintf(p.writer, "\r%s: %d bytes", p.name, p.current)
		return
	}
	percent := int(p.current * 100 / p.total)
	if percent == p.lastPercent {
		return
	}
	p.lastPercent = percent

	fmt.Fprintf(p.writer, "\r%s: %d%% (%d/%d bytes)", p.name, percent, p.current, p.total)
}
