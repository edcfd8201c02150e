package emulator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	DisplayW     = 64
	DisplayH     = 32
	DisplaySize  = DisplayW * DisplayH
	MemorySize   = 4096
	StackSize    = 16
	NumKeys      = 16
	GlyphOffset  = 0x000
	GlyphBytes   = 5
	ProgramStart = 0x200
	MaxProgram   = MemorySize - ProgramStart
)

// Chip8 is the machine state. It is not safe for concurrent use; the host
// calls Tick, TickTimers and Keypress from a single goroutine.
type Chip8 struct {
	mem   memory            // memory
	pc    uint16            // program counter
	v     [16]uint8         // registers
	i     uint16            // index register
	dt    uint8             // delay timer
	st    uint8             // sound timer
	stack stack             // call stack
	keys  [NumKeys]bool     // keypad state
	disp  [DisplaySize]bool // graphics

	rnd   *rand.Rand
	fault *Fault
	trace trace
}

var glyphs = []uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// New returns a machine with the glyph set loaded and PC at ProgramStart.
func New() *Chip8 {
	c := &Chip8{}
	c.pc = ProgramStart
	c.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

	copy(c.mem[GlyphOffset:], glyphs)
	return c
}

// Load copies a program to ProgramStart. Registers, display and timers are
// left untouched. A program that does not fit is rejected before memory is
// written.
func (c *Chip8) Load(b []byte) error {
	if len(b) > MaxProgram {
		return fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge, len(b), MaxProgram)
	}
	copy(c.mem[ProgramStart:], b)
	return nil
}

// Tick runs one fetch-decode-execute cycle. On failure it returns a *Fault,
// leaves PC at the faulting instruction and refuses to run further.
func (c *Chip8) Tick() error {
	if c.fault != nil {
		return c.fault
	}

	pc := c.pc
	op, err := c.fetchOpcode()
	if err == nil {
		in := Decode(op)
		c.trace.record(pc, in)
		err = c.execOpcode(in)
	}
	if err != nil {
		var f *Fault
		if !errors.As(err, &f) {
			f = &Fault{Err: err}
		}
		f.PC, f.Opcode = pc, op
		c.pc = pc
		c.fault = f
		return f
	}
	return nil
}

// TickTimers decrements both timers, flooring at zero. It reports true when
// the sound timer expires on this step, which is the cue for the host to
// sound a tone.
func (c *Chip8) TickTimers() bool {
	beep := false
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		beep = c.st == 1
		c.st--
	}
	return beep
}

// Display returns a copy of the row-major framebuffer; pixel (x, y) is at
// x + y*DisplayW.
func (c *Chip8) Display() [DisplaySize]bool {
	return c.disp
}

// Keypress records the state of keypad key idx (0x0-0xF).
func (c *Chip8) Keypress(idx int, pressed bool) error {
	if idx < 0 || idx >= NumKeys {
		return fmt.Errorf("%w: %d", ErrKeyIndex, idx)
	}
	c.keys[idx] = pressed
	return nil
}

// Trace returns the most recently executed instructions, oldest first.
func (c *Chip8) Trace() []TraceEntry {
	return c.trace.entries()
}

func (c *Chip8) fetchOpcode() (uint16, error) {
	b, err := c.mem.slice(c.pc, 2)
	if err != nil {
		return 0, err
	}
	c.pc += 2
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (c *Chip8) updateCarryFlag(b bool) {
	if b {
		c.v[0xf] = 1
	} else {
		c.v[0xf] = 0
	}
}

// draw XORs an 8xn sprite from memory at I onto the display, wrapping at
// the screen edges. It reports whether any lit pixel was turned off.
func (c *Chip8) draw(x, y, n uint8) (bool, error) {
	sprite, err := c.mem.slice(c.i, int(n))
	if err != nil {
		return false, err
	}

	flipped := false
	for iy, row := range sprite {
		for ix := 0; ix < 8; ix++ {
			if row&(0x80>>ix) == 0 {
				continue
			}
			tx := (int(x) + ix) % DisplayW
			ty := (int(y) + iy) % DisplayH
			p := &c.disp[ty*DisplayW+tx]
			if *p {
				flipped = true
			}
			*p = !*p
		}
	}
	return flipped, nil
}

// pressedKey returns the lowest pressed key, or false if none is down.
func (c *Chip8) pressedKey() (uint8, bool) {
	for i, v := range c.keys {
		if v {
			return uint8(i), true
		}
	}
	return 0, false
}

func (c *Chip8) key(idx uint8) (bool, error) {
	if int(idx) >= NumKeys {
		return false, &Fault{Err: ErrKeyIndex, Addr: int(idx)}
	}
	return c.keys[idx], nil
}
