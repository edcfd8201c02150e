package emulator

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memory range is 0x200 - 0x300
var opcodeTestTable = []struct {
	opcode uint16
	before func(c *Chip8)
	assert func(t *testing.T, c *Chip8)
}{
	// nop
	{
		0x0000,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// clear display
	{
		0x00E0,
		func(c *Chip8) {
			for i := range c.disp {
				c.disp[i] = true
			}
		},
		func(t *testing.T, c *Chip8) {
			for _, v := range c.disp {
				if !assert.False(t, v) {
					return
				}
			}
		},
	},
	// ret
	{
		0x00EE,
		func(c *Chip8) {
			c.stack.slots[0] = 0x300
			c.stack.sp = 1
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.stack.sp)
			assert.Equal(t, uint16(0x300), c.pc)
		},
	},
	// goto 0x0NNN
	{
		0x1234,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x234), c.pc)
		},
	},
	// call 0x0NNN
	{
		0x2208,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x208), c.pc)
			assert.Equal(t, uint8(1), c.stack.sp)
			assert.Equal(t, uint16(0x202), c.stack.slots[0])
		},
	},
	// 0x3XNN if(Vx==NN) [true]
	{
		0x3012,
		func(c *Chip8) {
			c.v[0] = 0x12
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// 0x3XNN if(Vx==NN) [false]
	{
		0x3012,
		func(c *Chip8) {
			c.v[0] = 0x1
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// 0x4XNN if(Vx!=NN) [true]
	{
		0x4012,
		func(c *Chip8) {
			c.v[0] = 0x1
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// 0x4XNN if(Vx!=NN) [false]
	{
		0x4012,
		func(c *Chip8) {
			c.v[0] = 0x12
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// 0x5XY0 if(Vx==Vy) [true]
	{
		0x5120,
		func(c *Chip8) {
			c.v[1] = 0x1
			c.v[2] = 0x1
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// 0x5XY0 if(Vx==Vy) [false]
	{
		0x5120,
		func(c *Chip8) {
			c.v[1] = 0x1
			c.v[2] = 0x2
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// 6XNN Vx = NN
	{
		0x6355,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x55), c.v[3])
		},
	},
	// 7XNN Vx += NN (Carry flag is not changed)
	{
		0x78f0,
		func(c *Chip8) {
			c.v[8] = 0xf
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0xff), c.v[8])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XY0	Vx=Vy
	{
		0x8450,
		func(c *Chip8) {
			c.v[5] = 0x33
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x33), c.v[4])
		},
	},
	// 8XY1	Vx=Vx|Vy
	{
		0x8231,
		func(c *Chip8) {
			c.v[2] = 0x01
			c.v[3] = 0x10
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x11), c.v[2])
		},
	},
	// 8XY2	Vx=Vx&Vy
	{
		0x8012,
		func(c *Chip8) {
			c.v[0] = 0x01
			c.v[1] = 0x10
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.v[0])
		},
	},
	// 8XY3	Vx=Vx^Vy
	{
		0x8673,
		func(c *Chip8) {
			c.v[6] = 0x09
			c.v[7] = 0x0f
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(6), c.v[6])
		},
	},
	// 8XY4	Vx += Vy (not carry)
	{
		0x8894,
		func(c *Chip8) {
			c.v[8] = 0x12
			c.v[9] = 0x34
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x46), c.v[8])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XY4	Vx += Vy (carry)
	{
		0x8894,
		func(c *Chip8) {
			c.v[8] = 0xab
			c.v[9] = 0xcd
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x0ff&(0xab+0xcd)), c.v[8])
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// 8XY5	Vx -= Vy (not borrow)
	{
		0x8ab5,
		func(c *Chip8) {
			c.v[0xa] = 0x45
			c.v[0xb] = 0x23
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x22), c.v[0xa])
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// 8XY5	Vx -= Vy (borrow)
	{
		0x8ab5,
		func(c *Chip8) {
			c.v[0xa] = 0x45
			c.v[0xb] = 0x56
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0xff&(0x45-0x56)), c.v[0xa])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XY6	Vx>>=1 (bit0 is 1)
	{
		0x8cd6,
		func(c *Chip8) {
			c.v[0xc] = 0x3
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(1), c.v[0xc])
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// 8XY6	Vx>>=1 (bit0 is 0)
	{
		0x8cd6,
		func(c *Chip8) {
			c.v[0xc] = 0x2
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(1), c.v[0xc])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XY7	Vx=Vy-Vx (not borrow)
	{
		0x8ef7,
		func(c *Chip8) {
			c.v[0xe] = 0x45
			c.v[0xf] = 0x67
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x22), c.v[0xe])
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// 8XY7	Vx=Vy-Vx (borrow)
	{
		0x8ef7,
		func(c *Chip8) {
			c.v[0xe] = 0x67
			c.v[0xf] = 0x45
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0xff&(0x45-0x67)), c.v[0xe])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XYE Vx<<=1 (bit7 is 0)
	{
		0x801E,
		func(c *Chip8) {
			c.v[0] = 0x08
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x10), c.v[0])
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// 8XYE Vx<<=1 (bit7 is 1)
	{
		0x801E,
		func(c *Chip8) {
			c.v[0] = 0x88
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0x10), c.v[0])
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// 9XY0 if(Vx!=Vy) (true)
	{
		0x9120,
		func(c *Chip8) {
			c.v[1] = 1
			c.v[2] = 2
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// 9XY0 if(Vx!=Vy) (false)
	{
		0x9120,
		func(c *Chip8) {
			c.v[1] = 1
			c.v[2] = 1
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// ANNN I = NNN
	{
		0xA123,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x123), c.i)
		},
	},
	// BNNN PC=V0+NNN
	{
		0xB100,
		func(c *Chip8) {
			c.v[0] = 0x23
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x123), c.pc)
		},
	},
	// CXNN Vx=rand()&NN
	{
		0xC800,
		func(c *Chip8) {
			c.v[8] = 0xff
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.v[8])
		},
	},
	// DXYN draw(Vx,Vy,N) (not flip)
	{
		0xD128,
		func(c *Chip8) {
			c.v[1] = 8
			c.v[2] = 8
			for i := range c.mem[:32] {
				c.mem[i] = 0xff
			}
		},
		func(t *testing.T, c *Chip8) {
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					assert.True(t, c.disp[(y+8)*DisplayW+x+8])
				}
			}
			assert.Equal(t, uint8(0), c.v[0xf])
		},
	},
	// DXYN draw(Vx,Vy,N) (flip)
	{
		0xD128,
		func(c *Chip8) {
			c.v[1] = 8
			c.v[2] = 8
			for i := range c.mem[:32] {
				c.mem[i] = 0xff
			}
			for i := range c.disp {
				c.disp[i] = true
			}
		},
		func(t *testing.T, c *Chip8) {
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					assert.False(t, c.disp[(y+8)*DisplayW+x+8])
				}
			}
			assert.Equal(t, uint8(1), c.v[0xf])
		},
	},
	// EX9E if(key()==Vx) (true)
	{
		0xE09E,
		func(c *Chip8) {
			c.v[0] = 7
			c.keys[7] = true
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// EX9E if(key()==Vx) (false)
	{
		0xE09E,
		func(c *Chip8) {
			c.v[0] = 7
			c.keys[7] = false
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// EXA1 if(key()!=Vx) (true)
	{
		0xE0A1,
		func(c *Chip8) {
			c.v[0] = 7
			c.keys[7] = false
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x204), c.pc)
		},
	},
	// EXA1 if(key()!=Vx) (false)
	{
		0xE0A1,
		func(c *Chip8) {
			c.v[0] = 7
			c.keys[7] = true
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// FX07 Vx = get_delay()
	{
		0xF107,
		func(c *Chip8) {
			c.dt = 10
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(10), c.v[1])
		},
	},
	// FX0A Vx = get_key() (any key pressed)
	{
		0xF20A,
		func(c *Chip8) {
			c.keys[1] = true
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(1), c.v[2])
			assert.Equal(t, uint16(0x202), c.pc)
		},
	},
	// FX0A Vx = get_key() (key not pressed)
	{
		0xF20A,
		nil,
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.v[2])
			assert.Equal(t, uint16(0x200), c.pc)
		},
	},
	// FX15 delay_timer(Vx)
	{
		0xF215,
		func(c *Chip8) {
			c.v[2] = 10
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(10), c.dt)
		},
	},
	// FX18 sound_timer(Vx)
	{
		0xF318,
		func(c *Chip8) {
			c.v[3] = 10
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(10), c.st)
		},
	},
	// FX1E I +=Vx
	{
		0xF41E,
		func(c *Chip8) {
			c.v[4] = 10
			c.i = 0x100
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(0x100+10), c.i)
		},
	},
	// FX29 I=sprite_addr[Vx]
	{
		0xF529,
		func(c *Chip8) {
			c.v[5] = 5
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint16(GlyphOffset+5*GlyphBytes), c.i)
		},
	},
	// FX33 set_BCD(Vx); Vx = 123
	{
		0xF633,
		func(c *Chip8) {
			c.v[6] = 123
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(1), c.mem[0])
			assert.Equal(t, uint8(2), c.mem[1])
			assert.Equal(t, uint8(3), c.mem[2])
		},
	},
	// FX33 set_BCD(Vx); Vx = 45
	{
		0xF633,
		func(c *Chip8) {
			c.v[6] = 45
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.mem[0])
			assert.Equal(t, uint8(4), c.mem[1])
			assert.Equal(t, uint8(5), c.mem[2])
		},
	},
	// FX33 set_BCD(Vx); Vx = 6
	{
		0xF633,
		func(c *Chip8) {
			c.v[6] = 6
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, uint8(0), c.mem[0])
			assert.Equal(t, uint8(0), c.mem[1])
			assert.Equal(t, uint8(6), c.mem[2])
		},
	},
	// FX55 reg_dump(Vx,&I) copies V0..V7 inclusive
	{
		0xF755,
		func(c *Chip8) {
			for i := range c.v {
				c.v[i] = uint8(0x10 + i)
			}
			c.i = 0x400
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, []uint8{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17}, c.mem[0x400:0x408])
			assert.Equal(t, uint8(0), c.mem[0x408])
			assert.Equal(t, uint16(0x400), c.i)
		},
	},
	// FX65 reg_load(Vx,&I) loads V0..V8 inclusive
	{
		0xF865,
		func(c *Chip8) {
			for i := 0; i < 16; i++ {
				c.mem[0x400+i] = uint8(0x20 + i)
			}
			c.i = 0x400
		},
		func(t *testing.T, c *Chip8) {
			assert.Equal(t, []uint8{0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28}, c.v[:9])
			assert.Equal(t, uint8(0), c.v[9])
			assert.Equal(t, uint16(0x400), c.i)
		},
	},
}

func TestExecOpcodes(t *testing.T) {
	for _, test := range opcodeTestTable {
		t.Run(fmt.Sprintf("opcode[%04X]", test.opcode), func(t *testing.T) {
			b := make([]byte, 0x100)
			binary.BigEndian.PutUint16(b, test.opcode)
			c := New()
			require.NoError(t, c.Load(b))

			if test.before != nil {
				test.before(c)
			}

			require.NoError(t, c.Tick())

			test.assert(t, c)
		})
	}
}
