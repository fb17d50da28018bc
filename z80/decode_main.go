package z80

// dispatchBase decodes and executes one unprefixed-plane opcode (or, when
// c.cur is indexIX/indexIY, one DD/FD-substituted opcode whose HL/H/L
// operands this function resolves via the index-aware register
// accessors). It returns the T-states the instruction consumed.
//
// Fields: x = bits 7..6, y = bits 5..3, z = bits 2..0, p = y>>1, q = y&1.
func (c *CPU) dispatchBase(op byte) int {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		return c.dispatchX0(y, z, p, q)
	case 1:
		if y == 6 && z == 6 {
			c.Halted = true
			return c.tstates(4)
		}
		v := c.readReg8(z)
		c.writeReg8(y, v)
		if y == 6 || z == 6 {
			return c.tstates(7)
		}
		return c.tstates(4)
	case 2:
		v := c.readReg8(z)
		c.aluDispatch(y, v)
		if z == 6 {
			return c.tstates(7)
		}
		return c.tstates(4)
	case 3:
		return c.dispatchX3(y, z, p, q)
	}
	panic("unreachable")
}

func (c *CPU) dispatchX0(y, z, p, q byte) int {
	switch z {
	case 0:
		switch {
		case y == 0:
			return c.tstates(4) // NOP
		case y == 1:
			c.ExAF()
			return c.tstates(4)
		case y == 2:
			return c.opDJNZ()
		case y == 3:
			return c.opJR(c.signedDisplacement(c.fetchByte()), true)
		default:
			taken := c.ccTest(y - 4)
			d := c.signedDisplacement(c.fetchByte())
			return c.opJR(d, taken)
		}
	case 1:
		if q == 0 {
			c.writeRP(p, c.fetchWord())
			return c.tstates(10)
		}
		c.writeIndexOrRP(2, c.add16(c.readRP(2), c.readRP(p)))
		return c.tstates(11)
	case 2:
		return c.opIndirectLoad(p, q)
	case 3:
		if q == 0 {
			c.writeRP(p, c.readRP(p)+1)
		} else {
			c.writeRP(p, c.readRP(p)-1)
		}
		return c.tstates(6)
	case 4:
		v := c.readReg8(y)
		c.writeReg8(y, c.inc8(v))
		if y == 6 {
			return c.tstates(11)
		}
		return c.tstates(4)
	case 5:
		v := c.readReg8(y)
		c.writeReg8(y, c.dec8(v))
		if y == 6 {
			return c.tstates(11)
		}
		return c.tstates(4)
	case 6:
		n := c.fetchByte()
		c.writeReg8(y, n)
		if y == 6 {
			return c.tstates(10)
		}
		return c.tstates(7)
	case 7:
		switch y {
		case 0:
			c.rlca()
		case 1:
			c.rrca()
		case 2:
			c.rla()
		case 3:
			c.rra()
		case 4:
			c.daa()
		case 5:
			c.cpl()
		case 6:
			c.scf()
		case 7:
			c.ccf()
		}
		return c.tstates(4)
	}
	panic("unreachable")
}

// writeIndexOrRP writes back the result of an operation that targets
// rp[2] (HL or the substituted index register) — used by ADD HL,rr so
// the result lands in IX/IY under a DD/FD prefix.
func (c *CPU) writeIndexOrRP(p byte, v uint16) { c.writeRP(p, v) }

func (c *CPU) opIndirectLoad(p, q byte) int {
	switch {
	case q == 0 && p == 0:
		c.writeMem(c.BC(), c.A)
		return c.tstates(7)
	case q == 0 && p == 1:
		c.writeMem(c.DE(), c.A)
		return c.tstates(7)
	case q == 0 && p == 2:
		c.writeWord(c.fetchWord(), c.readRP(2))
		return c.tstates(16)
	case q == 0 && p == 3:
		c.writeMem(c.fetchWord(), c.A)
		return c.tstates(13)
	case q == 1 && p == 0:
		c.A = c.readMem(c.BC())
		return c.tstates(7)
	case q == 1 && p == 1:
		c.A = c.readMem(c.DE())
		return c.tstates(7)
	case q == 1 && p == 2:
		c.writeRP(2, c.readWord(c.fetchWord()))
		return c.tstates(16)
	default: // q==1, p==3
		c.A = c.readMem(c.fetchWord())
		return c.tstates(13)
	}
}

func (c *CPU) opDJNZ() int {
	d := c.signedDisplacement(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(d))
		return c.tstates(13)
	}
	return c.tstates(8)
}

func (c *CPU) opJR(d int16, taken bool) int {
	if taken {
		c.PC = uint16(int32(c.PC) + int32(d))
		return c.tstates(12)
	}
	return c.tstates(7)
}

func (c *CPU) dispatchX3(y, z, p, q byte) int {
	switch z {
	case 0:
		if c.ccTest(y) {
			c.PC = c.popWord()
			return c.tstates(11)
		}
		return c.tstates(5)
	case 1:
		switch {
		case q == 0:
			c.writeRP2(p, c.popWord())
			return c.tstates(10)
		case p == 0:
			c.PC = c.popWord()
			return c.tstates(10)
		case p == 1:
			c.Exx()
			return c.tstates(4)
		case p == 2:
			c.PC = c.readRP(2)
			return c.tstates(4)
		default: // p==3
			c.SP = c.readRP(2)
			return c.tstates(6)
		}
	case 2:
		nn := c.fetchWord()
		if c.ccTest(y) {
			c.PC = nn
		}
		return c.tstates(10)
	case 3:
		switch y {
		case 0:
			c.PC = c.fetchWord()
			return c.tstates(10)
		case 1:
			return c.execCB()
		case 2:
			n := c.fetchByte()
			c.ioOut(uint16(c.A)<<8|uint16(n), c.A)
			return c.tstates(11)
		case 3:
			n := c.fetchByte()
			c.A = c.ioIn(uint16(c.A)<<8 | uint16(n))
			return c.tstates(11)
		case 4:
			hl := c.readRP(2)
			v := c.readWord(c.SP)
			c.writeWord(c.SP, hl)
			c.writeRP(2, v)
			return c.tstates(19)
		case 5:
			h, l := c.H, c.L
			c.H, c.L = c.D, c.E
			c.D, c.E = h, l
			return c.tstates(4)
		case 6:
			c.IFF1, c.IFF2 = false, false
			return c.tstates(4)
		default: // y==7
			c.IFF1, c.IFF2 = true, true
			c.eiPending = true
			return c.tstates(4)
		}
	case 4:
		nn := c.fetchWord()
		if c.ccTest(y) {
			c.pushWord(c.PC)
			c.PC = nn
			return c.tstates(17)
		}
		return c.tstates(10)
	case 5:
		switch {
		case q == 0:
			c.pushWord(c.readRP2(p))
			return c.tstates(11)
		case p == 0:
			nn := c.fetchWord()
			c.pushWord(c.PC)
			c.PC = nn
			return c.tstates(17)
		case p == 1:
			return c.tstates(4) + c.decodeIndexPrefix(indexIX)
		case p == 2:
			op2 := c.fetchOpcode()
			return c.dispatchED(op2)
		default: // p==3
			return c.tstates(4) + c.decodeIndexPrefix(indexIY)
		}
	case 6:
		n := c.fetchByte()
		c.aluDispatch(y, n)
		return c.tstates(7)
	default: // z==7
		c.pushWord(c.PC)
		c.PC = uint16(y) * 8
		return c.tstates(11)
	}
}

func (c *CPU) aluDispatch(y, v byte) {
	switch y {
	case 0:
		c.aluAdd(v)
	case 1:
		c.aluAdc(v)
	case 2:
		c.aluSub(v)
	case 3:
		c.aluSbc(v)
	case 4:
		c.aluAnd(v)
	case 5:
		c.aluXor(v)
	case 6:
		c.aluOr(v)
	case 7:
		c.aluCp(v)
	}
}

func (c *CPU) rotDispatch(y, v byte) byte {
	switch y {
	case 0:
		return c.rlc(v)
	case 1:
		return c.rrc(v)
	case 2:
		return c.rl(v)
	case 3:
		return c.rr(v)
	case 4:
		return c.sla(v)
	case 5:
		return c.sra(v)
	case 6:
		return c.sll(v)
	default: // 7
		return c.srl(v)
	}
}
