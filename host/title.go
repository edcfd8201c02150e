package host

const (
	windowTitle     = "Chip-8 Emulator"
	beepTitle       = windowTitle + " ♪"
	beepFlashFrames = 15
)

// titleFlash swaps a window title to beepTitle for beepFlashFrames frames
// after each sound cue. Window frontends use it as their Beeper.
type titleFlash struct {
	frames int
}

func (f *titleFlash) beep() string {
	f.frames = beepFlashFrames
	return beepTitle
}

// frame advances one presented frame. It returns the title to restore once
// the flash has run out.
func (f *titleFlash) frame() (string, bool) {
	if f.frames == 0 {
		return "", false
	}
	f.frames--
	if f.frames == 0 {
		return windowTitle, true
	}
	return "", false
}
