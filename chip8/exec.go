package chip8

// exec applies a decoded instruction to the interpreter state. Operand
// registers and I are snapshotted up front, so an instruction that writes
// its own operand register still computes from the pre-instruction values.
// Where an instruction both sets the flag and writes a result, the flag is
// set first; with x == 0xF the result write wins.
func (c *Chip8) exec(in instruction) {
	vx := c.regRead(in.x)
	vy := c.regRead(in.y)
	v0 := c.regRead(0)
	i := c.i

	switch in.kind {
	case opClear:
		c.fb.Clear()

	case opReturn:
		c.pcSet(c.pop())

	case opJump:
		c.pcSet(in.nnn)

	case opCall:
		c.push(c.pc)
		c.pcSet(in.nnn)

	case opSkipEqImm:
		if vx == in.nn {
			c.skip()
		}

	case opSkipNeImm:
		if vx != in.nn {
			c.skip()
		}

	case opSkipEqReg:
		if vx == vy {
			c.skip()
		}

	case opLoadImm:
		c.regWrite(in.x, in.nn)

	case opAddImm:
		c.regWrite(in.x, vx+in.nn)

	case opMove:
		c.regWrite(in.x, vy)

	case opOr:
		c.regWrite(in.x, vx|vy)

	case opAnd:
		c.regWrite(in.x, vx&vy)

	case opXor:
		c.regWrite(in.x, vx^vy)

	case opAddCarry:
		sum := uint16(vx) + uint16(vy)
		c.vfSet(sum > 0xff)
		c.regWrite(in.x, uint8(sum))

	case opSubBorrow:
		c.vfSet(vx >= vy)
		c.regWrite(in.x, vx-vy)

	case opShiftRight:
		c.vfSet(vx&1 != 0)
		c.regWrite(in.x, vx>>1)

	case opSubReverse:
		c.vfSet(vy >= vx)
		c.regWrite(in.x, vy-vx)

	case opShiftLeft:
		c.vfSet(vx&0x80 != 0)
		c.regWrite(in.x, vx<<1)

	case opSkipNeReg:
		if vx != vy {
			c.skip()
		}

	case opLoadI:
		c.iSet(in.nnn)

	case opJumpV0:
		c.pcSet(uint16(v0) + in.nnn)

	case opRandom:
		c.regWrite(in.x, uint8(c.rand.Intn(256))&in.nn)

	case opDraw:
		c.draw(vx, vy, in.n, i)

	case opSkipKey:
		if c.pad.Pressed(vx & 0xf) {
			c.skip()
		}

	case opSkipNoKey:
		if !c.pad.Pressed(vx & 0xf) {
			c.skip()
		}

	case opReadDelay:
		c.regWrite(in.x, c.delay)

	case opWaitKey:
		c.waiting = true
		c.waitReg = in.x

	case opSetDelay:
		c.delay = vx

	case opSetSound:
		c.sound = vx

	case opAddI:
		c.iSet(i + uint16(vx))

	case opFontGlyph:
		c.iSet(uint16(vx) * 5)

	case opStoreBCD:
		c.memWrite(i&addressMask, vx/100%10)
		c.memWrite((i+1)&addressMask, vx/10%10)
		c.memWrite((i+2)&addressMask, vx%10)

	case opStoreRegs:
		for j := uint16(0); j <= uint16(in.x); j++ {
			c.memWrite((i+j)&addressMask, c.regRead(uint8(j)))
		}

	case opLoadRegs:
		for j := uint16(0); j <= uint16(in.x); j++ {
			c.regWrite(uint8(j), c.memRead((i+j)&addressMask))
		}
	}
}

// draw XOR-blends an 8-pixel-wide, rows-deep sprite read from memory at
// base onto the framebuffer at (x0, y0), wrapping on both axes. Sprite
// rows are one byte each, most significant bit leftmost. vF records
// whether any lit pixel was toggled off.
func (c *Chip8) draw(x0, y0, rows uint8, base uint16) {
	collision := false
	for row := uint8(0); row < rows; row++ {
		line := c.memRead((base + uint16(row)) & addressMask)
		for col := uint8(0); col < 8; col++ {
			if line&(0x80>>col) == 0 {
				continue
			}
			x := (int(x0) + int(col)) % DisplayWidth
			y := (int(y0) + int(row)) % DisplayHeight
			lit := c.fb.Pixel(x, y)
			if lit {
				collision = true
			}
			c.fb.SetPixel(x, y, !lit)
		}
	}
	c.vfSet(collision)
}
