// Package terminal wraps the bits of terminal control the text renderer
// needs: size queries, raw mode and the alternate screen.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Control sequences used by the text renderer.
const (
	EnterAltScreen = "\x1b[?1049h"
	LeaveAltScreen = "\x1b[?1049l"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	CursorHome     = "\x1b[H"
	ClearScreen    = "\x1b[2J"
	ResetStyle     = "\x1b[0m"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Session is an acquired full-screen terminal. Close restores everything.
type Session struct {
	in    *os.File
	out   io.Writer
	fd    int
	state *term.State
}

// Open switches the terminal to raw mode and stdout to the alternate screen
// with the cursor hidden. Keys are read from a private handle on the
// controlling terminal when one exists, so Close can interrupt a pending
// read; otherwise stdin is used.
func Open() (*Session, error) {
	s := &Session{out: os.Stdout, fd: int(os.Stdin.Fd())}
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		if fd, ok := rawFd(tty); ok {
			s.in, s.fd = tty, fd
		} else {
			tty.Close()
		}
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		if s.in != nil {
			s.in.Close()
		}
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	s.state = state
	fmt.Fprint(s.out, EnterAltScreen+HideCursor+ClearScreen)
	return s, nil
}

// rawFd returns the descriptor of f without switching it to blocking mode,
// which File.Fd would do and which stops Close from interrupting reads.
func rawFd(f *os.File) (int, bool) {
	conn, err := f.SyscallConn()
	if err != nil {
		return 0, false
	}
	fd := -1
	if err := conn.Control(func(p uintptr) { fd = int(p) }); err != nil {
		return 0, false
	}
	return fd, fd >= 0
}

// Input returns the reader keys arrive on.
func (s *Session) Input() io.Reader {
	if s.in != nil {
		return s.in
	}
	return os.Stdin
}

// Close leaves the alternate screen, restores the original terminal mode and
// closes the private input handle, which unblocks any reader waiting on it.
func (s *Session) Close() error {
	fmt.Fprint(s.out, ResetStyle+ShowCursor+LeaveAltScreen)
	err := term.Restore(s.fd, s.state)
	if s.in != nil {
		if cerr := s.in.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
