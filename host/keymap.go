package host

// The keypad sits on the left-hand block of a QWERTY keyboard:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
const keyboardLayout = "1234qwerasdfzxcv"

var keypadLayout = [16]int{
	0x1, 0x2, 0x3, 0xc,
	0x4, 0x5, 0x6, 0xd,
	0x7, 0x8, 0x9, 0xe,
	0xa, 0x0, 0xb, 0xf,
}

// keyForByte maps a typed character to its keypad index.
func keyForByte(b byte) (int, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	for i := 0; i < len(keyboardLayout); i++ {
		if keyboardLayout[i] == b {
			return keypadLayout[i], true
		}
	}
	return 0, false
}
