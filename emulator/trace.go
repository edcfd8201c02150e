package emulator

import "fmt"

const TraceLen = 16

// TraceEntry is one executed instruction and the address it was fetched from.
type TraceEntry struct {
	PC          uint16
	Instruction Instruction
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("%03X-%04X %s", e.PC, e.Instruction.Word, e.Instruction)
}

type trace struct {
	ring  [TraceLen]TraceEntry
	index int
	count int
}

func (t *trace) record(pc uint16, in Instruction) {
	t.ring[t.index] = TraceEntry{PC: pc, Instruction: in}
	t.index = (t.index + 1) % TraceLen
	if t.count < TraceLen {
		t.count++
	}
}

func (t *trace) entries() []TraceEntry {
	out := make([]TraceEntry, 0, t.count)
	start := (t.index - t.count + TraceLen) % TraceLen
	for i := 0; i < t.count; i++ {
		out = append(out, t.ring[(start+i)%TraceLen])
	}
	return out
}
