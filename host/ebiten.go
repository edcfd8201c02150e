package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tuboc/chip8vm/emulator"
)

var ebitenKey2Key = map[ebiten.Key]int{
	ebiten.Key1: 0x1,
	ebiten.Key2: 0x2,
	ebiten.Key3: 0x3,
	ebiten.Key4: 0xc,
	ebiten.KeyQ: 0x4,
	ebiten.KeyW: 0x5,
	ebiten.KeyE: 0x6,
	ebiten.KeyR: 0xd,
	ebiten.KeyA: 0x7,
	ebiten.KeyS: 0x8,
	ebiten.KeyD: 0x9,
	ebiten.KeyF: 0xe,
	ebiten.KeyZ: 0xa,
	ebiten.KeyX: 0x0,
	ebiten.KeyC: 0xb,
	ebiten.KeyV: 0xf,
}

var (
	pixelOn  = [4]byte{0x00, 0xff, 0x00, 0xff}
	pixelOff = [4]byte{0x00, 0x00, 0x00, 0xff}
)

// Ebiten presents the display through an ebiten game loop. The logical
// screen is the native 64x32 and ebiten scales it to the window.
type Ebiten struct {
	scale  int
	m      Machine
	down   [emulator.NumKeys]bool
	pixels []byte
	flash  titleFlash
}

func NewEbiten(scale int) *Ebiten {
	return &Ebiten{
		scale:  scale,
		pixels: make([]byte, emulator.DisplaySize*4),
	}
}

// Loop runs m inside ebiten.RunGame, one Frame per ebiten update.
func (e *Ebiten) Loop(m Machine) error {
	e.m = m
	ebiten.SetWindowSize(emulator.DisplayW*e.scale, emulator.DisplayH*e.scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(FrameRate)
	return ebiten.RunGame(e)
}

func (e *Ebiten) Update() error {
	quit, err := step(e.m, e)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (e *Ebiten) Draw(screen *ebiten.Image) {
	screen.WritePixels(e.pixels)
}

func (e *Ebiten) Layout(outsideWidth, outsideHeight int) (int, int) {
	return emulator.DisplayW, emulator.DisplayH
}

func (e *Ebiten) Present(disp *[emulator.DisplaySize]bool) error {
	fillRGBA(e.pixels, disp)
	if title, ok := e.flash.frame(); ok {
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// Beep flashes the window title; there is no audio output.
func (e *Ebiten) Beep() {
	ebiten.SetWindowTitle(e.flash.beep())
}

func (e *Ebiten) PollEvents(keys KeySink) bool {
	for k, i := range ebitenKey2Key {
		pressed := ebiten.IsKeyPressed(k)
		if pressed != e.down[i] {
			e.down[i] = pressed
			_ = keys.Keypress(i, pressed)
		}
	}
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

func (e *Ebiten) Focused() bool {
	return ebiten.IsFocused()
}

func (e *Ebiten) Close() error {
	return nil
}

func fillRGBA(dst []byte, disp *[emulator.DisplaySize]bool) {
	for i, lit := range disp {
		if lit {
			copy(dst[i*4:], pixelOn[:])
		} else {
			copy(dst[i*4:], pixelOff[:])
		}
	}
}
