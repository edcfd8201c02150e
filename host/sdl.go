package host

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tuboc/chip8vm/emulator"
)

var scanCode2Key = map[int]int{
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0xc,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_R: 0xd,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_F: 0xe,
	sdl.SCANCODE_Z: 0xa,
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_C: 0xb,
	sdl.SCANCODE_V: 0xf,
}

// SDL presents the display in an SDL2 window. It must be created and used
// on the main OS thread.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	focus    bool
	flash    titleFlash
}

func checkError(s string, e error) {
	if e != nil {
		log.Fatalf("%s: %v", s, e)
	}
}

func initRenderer(w, h int32) (*sdl.Window, *sdl.Renderer) {
	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	checkError("CreateWindow", err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_PRESENTVSYNC)
	checkError("CreateRenderer", err)

	// workaround for https://bugzilla.libsdl.org/show_bug.cgi?id=4272
	// 	or update sdl2 to 2.0.9
	window.Hide()
	sdl.PumpEvents()
	window.Show()

	return window, renderer
}

func NewSDL(scale int) *SDL {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	checkError("sdl.Init", err)

	s := int32(scale)
	window, renderer := initRenderer(emulator.DisplayW*s, emulator.DisplayH*s)
	return &SDL{window: window, renderer: renderer, scale: s, focus: true}
}

func (e *SDL) Present(disp *[emulator.DisplaySize]bool) error {
	e.renderer.SetDrawColor(0, 0, 0, 255)
	e.renderer.Clear()

	e.renderer.SetDrawColor(0, 255, 0, 255)
	for y := int32(0); y < emulator.DisplayH; y++ {
		for x := int32(0); x < emulator.DisplayW; x++ {
			if disp[y*emulator.DisplayW+x] {
				e.renderer.FillRect(&sdl.Rect{X: x * e.scale, Y: y * e.scale, W: e.scale, H: e.scale})
			}
		}
	}

	e.renderer.Present()

	if title, ok := e.flash.frame(); ok {
		e.window.SetTitle(title)
	}
	return nil
}

// Beep flashes the window title; there is no audio output.
func (e *SDL) Beep() {
	e.window.SetTitle(e.flash.beep())
}

func (e *SDL) PollEvents(keys KeySink) bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				if i, ok := scanCode2Key[int(ev.Keysym.Scancode)]; ok {
					_ = keys.Keypress(i, true)
				} else if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			case sdl.KEYUP:
				if i, ok := scanCode2Key[int(ev.Keysym.Scancode)]; ok {
					_ = keys.Keypress(i, false)
				}
			}
		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST:
				e.focus = false
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				e.focus = true
			}
		}
	}
	return quit
}

func (e *SDL) Focused() bool {
	return e.focus
}

func (e *SDL) Close() error {
	e.renderer.Destroy()
	e.window.Destroy()
	sdl.Quit()
	return nil
}
