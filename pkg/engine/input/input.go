// Package input turns keyboard and terminal events into viewer actions.
package input

import (
	"context"
	"errors"
	"io"
	"time"
)

// Decode splits a chunk of terminal bytes into key codes. Escape sequences
// for arrows are recognised; other sequences are dropped.
func Decode(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'A':
					codes = append(codes, "arrow_up")
				case 'B':
					codes = append(codes, "arrow_down")
				case 'C':
					codes = append(codes, "arrow_right")
				case 'D':
					codes = append(codes, "arrow_left")
				}
				i += 2
				continue
			}
			codes = append(codes, "escape")
		case b == 3:
			codes = append(codes, "ctrl_c")
		case b == ' ':
			codes = append(codes, "space")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b == 127 || b == 8:
			codes = append(codes, "backspace")
		case b >= 'A' && b <= 'Z':
			codes = append(codes, string(rune(b+'a'-'A')))
		case b > 32 && b < 127:
			codes = append(codes, string(rune(b)))
		}
	}
	return codes
}

// ReadKeys reads raw terminal input from r until ctx is done or r fails,
// sending one RawInput per decoded key. The terminal should already be in raw
// mode. It closes out before returning.
func ReadKeys(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	defer close(out)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, code := range Decode(buf[:n]) {
			select {
			case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
