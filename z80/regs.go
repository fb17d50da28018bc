package z80

// Register-by-index tables per spec §4.3: r[i] = B=0 C=1 D=2 E=3 H=4
// L=5 (HL)=6 A=7. readReg8Plain/writeReg8Plain resolve index 6, the (HL)
// special case, as a memory access at HL; callers that may encounter it
// (CB-plane, ED-plane, the unprefixed plane) check for it explicitly
// when charging T-states, because it costs an extra memory round trip
// the other seven registers don't.

// readReg8Plain reads r[idx] without any DD/FD index-register
// substitution; used by the CB and ED planes, which never see IX/IY.
func (c *CPU) readReg8Plain(idx byte) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readMem(c.HL())
	case 7:
		return c.A
	}
	panic("z80: register index out of range")
}

func (c *CPU) writeReg8Plain(idx, v byte) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeMem(c.HL(), v)
	case 7:
		c.A = v
	default:
		panic("z80: register index out of range")
	}
}

// indexReg returns the 16-bit register (HL, IX or IY) c.cur currently
// names.
func (c *CPU) indexReg() uint16 {
	switch c.cur {
	case indexIX:
		return c.IX
	case indexIY:
		return c.IY
	default:
		return c.HL()
	}
}

func (c *CPU) setIndexReg(v uint16) {
	switch c.cur {
	case indexIX:
		c.IX = v
	case indexIY:
		c.IY = v
	default:
		c.SetHL(v)
	}
}

// effDisp returns the (IX+d)/(IY+d) displacement for the instruction
// currently being decoded, fetching it from the byte immediately after
// the opcode the first time it is needed and caching it thereafter. It
// is 0, unconsulted, when c.cur is indexHL.
func (c *CPU) effDisp() int16 {
	if c.cur == indexHL {
		return 0
	}
	if !c.dispFetched {
		c.disp = int16(int8(c.fetchByte()))
		c.dispFetched = true
	}
	return c.disp
}

func (c *CPU) effAddr() uint16 {
	return uint16(int32(c.indexReg()) + int32(c.effDisp()))
}

// readReg8 reads r[idx], honouring the DD/FD substitution for H, L and
// (HL) described in §4.3. Callers that must apply the "other operand is
// (IX+d)/(IY+d)" exception (which reverts H/L to the real register) use
// readReg8Plain/writeReg8Plain directly instead of this function for
// that operand.
func (c *CPU) readReg8(idx byte) byte {
	switch idx {
	case 4:
		if c.cur == indexIX {
			return byte(c.IX >> 8)
		}
		if c.cur == indexIY {
			return byte(c.IY >> 8)
		}
		return c.H
	case 5:
		if c.cur == indexIX {
			return byte(c.IX)
		}
		if c.cur == indexIY {
			return byte(c.IY)
		}
		return c.L
	case 6:
		return c.readMem(c.effAddr())
	default:
		return c.readReg8Plain(idx)
	}
}

func (c *CPU) writeReg8(idx byte, v byte) {
	switch idx {
	case 4:
		switch c.cur {
		case indexIX:
			c.IX = (c.IX & 0x00FF) | uint16(v)<<8
		case indexIY:
			c.IY = (c.IY & 0x00FF) | uint16(v)<<8
		default:
			c.H = v
		}
	case 5:
		switch c.cur {
		case indexIX:
			c.IX = (c.IX & 0xFF00) | uint16(v)
		case indexIY:
			c.IY = (c.IY & 0xFF00) | uint16(v)
		default:
			c.L = v
		}
	case 6:
		c.writeMem(c.effAddr(), v)
	default:
		c.writeReg8Plain(idx, v)
	}
}

// rp[p]: BC=0 DE=1 HL=2 SP=3 — HL is substituted by the current index
// register.
func (c *CPU) readRP(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.indexReg()
	case 3:
		return c.SP
	}
	panic("z80: rp index out of range")
}

func (c *CPU) writeRP(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.setIndexReg(v)
	case 3:
		c.SP = v
	}
}

// rp2[p]: BC=0 DE=1 HL=2 AF=3 — used by PUSH/POP, also index-substituted
// for HL.
func (c *CPU) readRP2(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.indexReg()
	case 3:
		return c.AF()
	}
	panic("z80: rp2 index out of range")
}

func (c *CPU) writeRP2(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.setIndexReg(v)
	case 3:
		c.SetAF(v)
	}
}

// ccTest evaluates cc[y]: NZ Z NC C PO PE P M.
func (c *CPU) ccTest(y byte) bool {
	switch y {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagP == 0
	case 5:
		return c.F&FlagP != 0
	case 6:
		return c.F&FlagS == 0
	case 7:
		return c.F&FlagS != 0
	}
	panic("z80: cc index out of range")
}
