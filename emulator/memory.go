package emulator

type memory [MemorySize]uint8

// slice returns n bytes starting at addr, or a bounds fault if any of them
// lies outside memory.
func (m *memory) slice(addr uint16, n int) ([]uint8, error) {
	end := int(addr) + n
	if end > len(m) {
		return nil, &Fault{Err: ErrMemoryBounds, Addr: end - 1}
	}
	return m[addr:end], nil
}

type stack struct {
	slots [StackSize]uint16
	sp    uint8
}

func (s *stack) push(v uint16) error {
	if int(s.sp) >= len(s.slots) {
		return &Fault{Err: ErrStackOverflow, Addr: int(s.sp)}
	}
	s.slots[s.sp] = v
	s.sp++
	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, &Fault{Err: ErrStackUnderflow, Addr: -1}
	}
	s.sp--
	return s.slots[s.sp], nil
}
