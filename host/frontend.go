// Package host drives an emulator.Chip8 from a window or terminal: it paces
// frames, presents the display and forwards key events to the keypad.
package host

import (
	"errors"
	"fmt"

	"github.com/tuboc/chip8vm/emulator"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// KeySink receives keypad state changes.
type KeySink interface {
	Keypress(idx int, pressed bool) error
}

// Machine is the part of *emulator.Chip8 the host drives.
type Machine interface {
	KeySink
	Tick() error
	TickTimers() bool
	Display() [emulator.DisplaySize]bool
}

// Frontend can present a frame and report key state.
type Frontend interface {
	Present(disp *[emulator.DisplaySize]bool) error
	// PollEvents forwards pending key changes to keys and reports whether
	// the user asked to quit.
	PollEvents(keys KeySink) (quit bool)
	Close() error
}

// Looper is implemented by frontends that own the main loop.
type Looper interface {
	Loop(m Machine) error
}

// Focuser is implemented by frontends that can lose input focus. The runner
// pauses the machine while Focused reports false.
type Focuser interface {
	Focused() bool
}

// Beeper is implemented by frontends that can sound the sound-timer cue.
type Beeper interface {
	Beep()
}

// Open creates the named frontend: "sdl", "ebiten" or "term".
func Open(name string, scale int) (Frontend, error) {
	switch name {
	case "sdl":
		return NewSDL(scale), nil
	case "ebiten":
		return NewEbiten(scale), nil
	case "term":
		t, err := NewTerm()
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, name)
}
