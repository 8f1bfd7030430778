// Package singlelinewriter keeps transient output (download progress)
// on one terminal line while permanent messages scroll normally above
// it.
package singlelinewriter

import (
	"fmt"
	"io"
	"sync"
)

type UI interface {
	io.WriteCloser
	Say(message string, args ...interface{})
}

type ui struct {
	mu    sync.Mutex
	w     io.Writer
	dirty bool
}

func New(w io.Writer) UI {
	return &ui{w: w}
}

// Write passes transient output straight through; callers are expected
// to use carriage returns to redraw in place.
func (u *ui) Write(p []byte) (n int, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirty = true
	return u.w.Write(p)
}

// Say clears any in-place output, then prints a permanent line.
func (u *ui) Say(message string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.clear()
	fmt.Fprintf(u.w, "%s\n", fmt.Sprintf(message, args...))
}

func (u *ui) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.clear()
	return nil
}

func (u *ui) clear() {
	if u.dirty {
		u.w.Write([]byte("\r\033[K"))
		u.dirty = false
	}
}
