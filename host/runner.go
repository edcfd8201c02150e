package host

import "time"

const (
	FrameRate     = 60
	TicksPerFrame = 10
)

// Frame runs TicksPerFrame instructions followed by one timer step. The
// sound cue is passed to f when it implements Beeper.
func Frame(m Machine, f Frontend) error {
	for i := 0; i < TicksPerFrame; i++ {
		if err := m.Tick(); err != nil {
			return err
		}
	}
	if m.TickTimers() {
		if b, ok := f.(Beeper); ok {
			b.Beep()
		}
	}
	return nil
}

// Run drives m until the user quits or the machine faults. Frontends that
// implement Looper run their own loop; the rest are paced at FrameRate.
func Run(m Machine, f Frontend) error {
	if l, ok := f.(Looper); ok {
		return l.Loop(m)
	}

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for range ticker.C {
		quit, err := step(m, f)
		if quit || err != nil {
			return err
		}
	}
	return nil
}

func step(m Machine, f Frontend) (bool, error) {
	if f.PollEvents(m) {
		return true, nil
	}
	if focused(f) {
		if err := Frame(m, f); err != nil {
			return false, err
		}
	}
	disp := m.Display()
	return false, f.Present(&disp)
}

func focused(f Frontend) bool {
	if fc, ok := f.(Focuser); ok {
		return fc.Focused()
	}
	return true
}
