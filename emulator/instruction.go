package emulator

import "fmt"

// Op identifies one instruction of the set. Decode produces exactly one Op
// per word; OpInvalid marks words that match no known pattern.
type Op uint8

const (
	OpInvalid Op = iota

	OpNop     // 0000
	OpCls     // 00E0
	OpRet     // 00EE
	OpJp      // 1NNN
	OpCall    // 2NNN
	OpSeImm   // 3XNN
	OpSneImm  // 4XNN
	OpSeReg   // 5XY0
	OpLdImm   // 6XNN
	OpAddImm  // 7XNN
	OpLdReg   // 8XY0
	OpOr      // 8XY1
	OpAnd     // 8XY2
	OpXor     // 8XY3
	OpAddReg  // 8XY4
	OpSub     // 8XY5
	OpShr     // 8XY6
	OpSubn    // 8XY7
	OpShl     // 8XYE
	OpSneReg  // 9XY0
	OpLdI     // ANNN
	OpJpV0    // BNNN
	OpRnd     // CXNN
	OpDrw     // DXYN
	OpSkp     // EX9E
	OpSknp    // EXA1
	OpLdVxDT  // FX07
	OpLdVxK   // FX0A
	OpLdDTVx  // FX15
	OpLdSTVx  // FX18
	OpAddI    // FX1E
	OpLdF     // FX29
	OpLdB     // FX33
	OpLdMemVx // FX55
	OpLdVxMem // FX65

	numOps
)

// Instruction is a decoded instruction word. Only the operand fields that
// Op uses are meaningful.
type Instruction struct {
	Op   Op
	Word uint16
	X    uint8
	Y    uint8
	N    uint8
	NN   uint8
	NNN  uint16
}

// Decode splits a word into its nibbles and classifies it.
func Decode(op uint16) Instruction {
	nnn := op & 0x0FFF
	in := Instruction{
		Word: op,
		X:    uint8(nnn >> 8),
		Y:    uint8(nnn>>4) & 0xf,
		N:    uint8(nnn) & 0xf,
		NN:   uint8(nnn),
		NNN:  nnn,
	}
	in.Op = classify(op, in)
	return in
}

func classify(op uint16, in Instruction) Op {
	switch op & 0xF000 {
	case 0x0000:
		switch op {
		case 0x0000:
			return OpNop
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeImm
	case 0x4000:
		return OpSneImm
	case 0x5000:
		if in.N == 0 {
			return OpSeReg
		}
	case 0x6000:
		return OpLdImm
	case 0x7000:
		return OpAddImm
	case 0x8000:
		switch in.N {
		case 0x0:
			return OpLdReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddReg
		case 0x5:
			return OpSub
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubn
		case 0xE:
			return OpShl
		}
	case 0x9000:
		if in.N == 0 {
			return OpSneReg
		}
	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw
	case 0xE000:
		switch in.NN {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF000:
		switch in.NN {
		case 0x07:
			return OpLdVxDT
		case 0x0A:
			return OpLdVxK
		case 0x15:
			return OpLdDTVx
		case 0x18:
			return OpLdSTVx
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLdF
		case 0x33:
			return OpLdB
		case 0x55:
			return OpLdMemVx
		case 0x65:
			return OpLdVxMem
		}
	}
	return OpInvalid
}

// String renders the instruction as an assembler mnemonic.
func (in Instruction) String() string {
	x, y := in.X, in.Y
	switch in.Op {
	case OpNop:
		return "NOP  "
	case OpCls:
		return "CLS  "
	case OpRet:
		return "RET  "
	case OpJp:
		return fmt.Sprintf("JP   %03X", in.NNN)
	case OpCall:
		return fmt.Sprintf("CALL %03X", in.NNN)
	case OpSeImm:
		return fmt.Sprintf("SE   V%0X,#%02X", x, in.NN)
	case OpSneImm:
		return fmt.Sprintf("SNE  V%0X,#%02X", x, in.NN)
	case OpSeReg:
		return fmt.Sprintf("SE   V%0X,V%0X", x, y)
	case OpLdImm:
		return fmt.Sprintf("LD   V%0X,#%02X", x, in.NN)
	case OpAddImm:
		return fmt.Sprintf("ADD  V%0X,#%02X", x, in.NN)
	case OpLdReg:
		return fmt.Sprintf("LD   V%0X,V%0X", x, y)
	case OpOr:
		return fmt.Sprintf("OR   V%0X,V%0X", x, y)
	case OpAnd:
		return fmt.Sprintf("AND  V%0X,V%0X", x, y)
	case OpXor:
		return fmt.Sprintf("XOR  V%0X,V%0X", x, y)
	case OpAddReg:
		return fmt.Sprintf("ADD  V%0X,V%0X", x, y)
	case OpSub:
		return fmt.Sprintf("SUB  V%0X,V%0X", x, y)
	case OpShr:
		return fmt.Sprintf("SHR  V%0X", x)
	case OpSubn:
		return fmt.Sprintf("SUBN V%0X,V%0X", x, y)
	case OpShl:
		return fmt.Sprintf("SHL  V%0X", x)
	case OpSneReg:
		return fmt.Sprintf("SNE  V%0X,V%0X", x, y)
	case OpLdI:
		return fmt.Sprintf("LD   I,#%03X", in.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP   V0,#%03X", in.NNN)
	case OpRnd:
		return fmt.Sprintf("RND  V%0X,#%02X", x, in.NN)
	case OpDrw:
		return fmt.Sprintf("DRW  V%0X,V%0X,%d", x, y, in.N)
	case OpSkp:
		return fmt.Sprintf("SKP  V%0X", x)
	case OpSknp:
		return fmt.Sprintf("SKNP V%0X", x)
	case OpLdVxDT:
		return fmt.Sprintf("LD   V%0X,DT", x)
	case OpLdVxK:
		return fmt.Sprintf("LD   V%0X,K", x)
	case OpLdDTVx:
		return fmt.Sprintf("LD   DT,V%0X", x)
	case OpLdSTVx:
		return fmt.Sprintf("LD   ST,V%0X", x)
	case OpAddI:
		return fmt.Sprintf("ADD  I,V%0X", x)
	case OpLdF:
		return fmt.Sprintf("LD   F,V%0X", x)
	case OpLdB:
		return fmt.Sprintf("LD   B,V%0X", x)
	case OpLdMemVx:
		return fmt.Sprintf("LD   [I],V%0X", x)
	case OpLdVxMem:
		return fmt.Sprintf("LD   V%0X,[I]", x)
	}
	return fmt.Sprintf("DW   #%04X", in.Word)
}
