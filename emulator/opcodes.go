package emulator

import "fmt"

// execOpcode applies one decoded instruction. PC has already been advanced
// past it. Where an instruction sets VF as a flag, Vx is written first and
// VF last, so with x == 0xF the flag survives.
func (c *Chip8) execOpcode(in Instruction) error {
	x, y := in.X, in.Y

	switch in.Op {
	case OpInvalid:
		return &Fault{Err: ErrUnknownOpcode}

	case OpNop:

	case OpCls: // clear display
		for i := range c.disp {
			c.disp[i] = false
		}

	case OpRet: // return from subroutine
		r, err := c.stack.pop()
		if err != nil {
			return err
		}
		c.pc = r

	case OpJp: // goto 0x0NNN
		c.pc = in.NNN

	case OpCall: // call 0x0NNN
		if err := c.stack.push(c.pc); err != nil {
			return err
		}
		c.pc = in.NNN

	case OpSeImm: // 3XNN if(Vx==NN)
		if c.v[x] == in.NN {
			c.pc += 2
		}

	case OpSneImm: // 4XNN if(Vx!=NN)
		if c.v[x] != in.NN {
			c.pc += 2
		}

	case OpSeReg: // 5XY0 if(Vx==Vy)
		if c.v[x] == c.v[y] {
			c.pc += 2
		}

	case OpLdImm: // 6XNN Vx = NN
		c.v[x] = in.NN

	case OpAddImm: // 7XNN Vx += NN (Carry flag is not changed)
		c.v[x] += in.NN

	case OpLdReg: // 8XY0 Vx=Vy
		c.v[x] = c.v[y]

	case OpOr: // 8XY1 Vx=Vx|Vy
		c.v[x] |= c.v[y]

	case OpAnd: // 8XY2 Vx=Vx&Vy
		c.v[x] &= c.v[y]

	case OpXor: // 8XY3 Vx=Vx^Vy
		c.v[x] ^= c.v[y]

	case OpAddReg: // 8XY4 Vx += Vy
		carried := uint16(c.v[x])+uint16(c.v[y]) > 0xff
		c.v[x] += c.v[y]
		c.updateCarryFlag(carried)

	case OpSub: // 8XY5 Vx -= Vy
		borrowed := c.v[x] < c.v[y]
		c.v[x] -= c.v[y]
		c.updateCarryFlag(!borrowed)

	case OpShr: // 8XY6 Vx>>=1
		out := c.v[x] & 0x01
		c.v[x] >>= 1
		c.v[0xf] = out

	case OpSubn: // 8XY7 Vx=Vy-Vx
		borrowed := c.v[y] < c.v[x]
		c.v[x] = c.v[y] - c.v[x]
		c.updateCarryFlag(!borrowed)

	case OpShl: // 8XYE Vx<<=1
		out := c.v[x] >> 7
		c.v[x] <<= 1
		c.v[0xf] = out

	case OpSneReg: // 9XY0 if(Vx!=Vy)
		if c.v[x] != c.v[y] {
			c.pc += 2
		}

	case OpLdI: // ANNN I = NNN
		c.i = in.NNN

	case OpJpV0: // BNNN PC=V0+NNN
		c.pc = uint16(c.v[0]) + in.NNN

	case OpRnd: // CXNN Vx=rand()&NN
		c.v[x] = uint8(c.rnd.Intn(256)) & in.NN

	case OpDrw: // DXYN draw(Vx,Vy,N)
		flipped, err := c.draw(c.v[x], c.v[y], in.N)
		if err != nil {
			return err
		}
		c.updateCarryFlag(flipped)

	case OpSkp: // EX9E if(key()==Vx)
		down, err := c.key(c.v[x])
		if err != nil {
			return err
		}
		if down {
			c.pc += 2
		}

	case OpSknp: // EXA1 if(key()!=Vx)
		down, err := c.key(c.v[x])
		if err != nil {
			return err
		}
		if !down {
			c.pc += 2
		}

	case OpLdVxDT: // FX07 Vx = get_delay()
		c.v[x] = c.dt

	case OpLdVxK: // FX0A Vx = get_key()
		k, ok := c.pressedKey()
		if !ok {
			// pc decrement for blocking
			c.pc -= 2
			break
		}
		c.v[x] = k

	case OpLdDTVx: // FX15 delay_timer(Vx)
		c.dt = c.v[x]

	case OpLdSTVx: // FX18 sound_timer(Vx)
		c.st = c.v[x]

	case OpAddI: // FX1E I +=Vx
		c.i += uint16(c.v[x])

	case OpLdF: // FX29 I=sprite_addr[Vx]
		c.i = GlyphOffset + uint16(c.v[x])*GlyphBytes

	case OpLdB: // FX33 set_BCD(Vx)
		m, err := c.mem.slice(c.i, 3)
		if err != nil {
			return err
		}
		m[0] = c.v[x] / 100
		m[1] = (c.v[x] % 100) / 10
		m[2] = c.v[x] % 10

	case OpLdMemVx: // FX55 reg_dump(Vx,&I)
		m, err := c.mem.slice(c.i, int(x)+1)
		if err != nil {
			return err
		}
		copy(m, c.v[:x+1])

	case OpLdVxMem: // FX65 reg_load(Vx,&I)
		m, err := c.mem.slice(c.i, int(x)+1)
		if err != nil {
			return err
		}
		copy(c.v[:x+1], m)

	default:
		panic(fmt.Sprintf("emulator: no handler for %v", in.Op))
	}
	return nil
}
