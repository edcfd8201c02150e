package host

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tuboc/chip8vm/emulator"
)

// Terminals report key presses but not releases, so a key is held for this
// many frames after its last byte arrives.
const termKeyHoldFrames = 6

const (
	byteCtrlC  = 0x03
	byteEscape = 0x1b
)

// Term draws the display on an ANSI terminal, two pixel rows per line, and
// reads the keypad from raw-mode stdin.
type Term struct {
	out  io.Writer
	in   <-chan []byte
	held [emulator.NumKeys]int
	buf  bytes.Buffer

	fd  int
	old *term.State
}

func NewTerm() (*Term, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("term: stdin is not a terminal")
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < emulator.DisplayW || h < emulator.DisplayH/2 {
			return nil, fmt.Errorf("term: need a %dx%d terminal, have %dx%d", emulator.DisplayW, emulator.DisplayH/2, w, h)
		}
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: failed to set raw mode: %w", err)
	}

	in := make(chan []byte, 16)
	go readChunks(os.Stdin, in)

	t := newTerm(os.Stdout, in)
	t.fd, t.old = fd, old
	// clear screen, hide cursor
	fmt.Fprint(t.out, "\x1b[2J\x1b[?25l")
	return t, nil
}

func newTerm(out io.Writer, in <-chan []byte) *Term {
	return &Term{out: out, in: in}
}

// readChunks forwards stdin one read at a time. Terminals write an escape
// sequence in a single write, so it arrives in a single chunk.
func readChunks(r io.Reader, ch chan<- []byte) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			ch <- chunk
		}
		if err != nil {
			close(ch)
			return
		}
	}
}

func (t *Term) Present(disp *[emulator.DisplaySize]bool) error {
	t.buf.Reset()
	t.buf.WriteString("\x1b[H")
	for y := 0; y < emulator.DisplayH; y += 2 {
		for x := 0; x < emulator.DisplayW; x++ {
			top := disp[y*emulator.DisplayW+x]
			bottom := disp[(y+1)*emulator.DisplayW+x]
			switch {
			case top && bottom:
				t.buf.WriteString("█")
			case top:
				t.buf.WriteString("▀")
			case bottom:
				t.buf.WriteString("▄")
			default:
				t.buf.WriteByte(' ')
			}
		}
		t.buf.WriteString("\r\n")
	}
	_, err := t.out.Write(t.buf.Bytes())
	return err
}

func (t *Term) PollEvents(keys KeySink) bool {
	for i, n := range t.held {
		if n == 0 {
			continue
		}
		t.held[i]--
		if t.held[i] == 0 {
			_ = keys.Keypress(i, false)
		}
	}

	for {
		select {
		case chunk, ok := <-t.in:
			if !ok {
				return true
			}
			if t.handleChunk(chunk, keys) {
				return true
			}
		default:
			return false
		}
	}
}

// handleChunk feeds typed keys to keys and reports a quit request: Ctrl-C,
// or an ESC that does not start an escape sequence.
func (t *Term) handleChunk(chunk []byte, keys KeySink) bool {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		switch {
		case b == byteCtrlC:
			return true
		case b == byteEscape:
			if i+1 == len(chunk) {
				return true
			}
			i = skipEscape(chunk, i+1)
		default:
			if k, ok := keyForByte(b); ok {
				t.held[k] = termKeyHoldFrames
				_ = keys.Keypress(k, true)
			}
		}
	}
	return false
}

// skipEscape returns the index of the last byte of the escape sequence
// whose body starts at chunk[i]: CSI runs to its final byte, SS3 takes one
// more byte, anything else is an Alt-modified key.
func skipEscape(chunk []byte, i int) int {
	switch chunk[i] {
	case '[':
		for j := i + 1; j < len(chunk); j++ {
			if chunk[j] >= 0x40 && chunk[j] <= 0x7e {
				return j
			}
		}
		return len(chunk) - 1
	case 'O':
		if i+1 < len(chunk) {
			return i + 1
		}
	}
	return i
}

func (t *Term) Beep() {
	fmt.Fprint(t.out, "\a")
}

func (t *Term) Close() error {
	// show cursor
	fmt.Fprint(t.out, "\x1b[?25h\r\n")
	if t.old == nil {
		return nil
	}
	err := term.Restore(t.fd, t.old)
	t.old = nil
	return err
}
