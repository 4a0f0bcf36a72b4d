// Package ssh adapts an SSH channel into a tcell.Tty so every connection can
// drive its own tcell.Screen.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH channel. Window changes arrive on a
// channel supplied by the server.
type Tty struct {
	ch     io.ReadWriteCloser
	winCh  <-chan gossh.Window
	mu     sync.Mutex
	window gossh.Window
	cb     func()
	watch  sync.Once
}

var _ tcell.Tty = (*Tty)(nil)

// New wraps ch. win is the size from the pty request; winCh delivers later
// window changes.
func New(ch io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{ch: ch, window: win, winCh: winCh}
}

// FromSession wraps a gliderlabs session. It reports false when the client
// did not request a pty.
func FromSession(s gossh.Session) (*Tty, bool) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, false
	}
	return New(s, pty.Window, winCh), true
}

func (t *Tty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *Tty) Close() error                { return t.ch.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and closed
// by the server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last reported terminal size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after each window change. The first
// call starts draining winCh for the rest of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				fn := t.cb
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}()
	})
}
