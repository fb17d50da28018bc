package z80

// imTable implements the standard IM-select aliasing: y values 2/3/6/7
// distinguish IM1/IM2 from IM1/IM2 again, everything else collapses to
// IM0.
var imTable = [8]byte{IM0, IM0, IM1, IM2, IM0, IM0, IM1, IM2}

// dispatchED decodes one ED-plane opcode. Only x=1 and x=2(y>=4,z<=3)
// are defined; everything else is a NOP. ED-plane register operands are
// never DD/FD-substituted, so this function uses the plain accessors
// exclusively even if a discarded DD/FD prefix preceded it.
func (c *CPU) dispatchED(op byte) int {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		return c.dispatchEDx1(y, z, p, q)
	case 2:
		if y >= 4 && z <= 3 {
			return c.dispatchEDBlock(y, z)
		}
		return c.tstates(8)
	default:
		return c.tstates(8)
	}
}

func (c *CPU) dispatchEDx1(y, z, p, q byte) int {
	switch z {
	case 0:
		if y == 6 {
			v := c.ioIn(c.BC())
			c.F = (c.F & FlagC) | sz53p[v]
			return c.tstates(12)
		}
		v := c.ioIn(c.BC())
		c.writeReg8Plain(y, v)
		c.F = (c.F & FlagC) | sz53p[v]
		return c.tstates(12)
	case 1:
		if y == 6 {
			c.ioOut(c.BC(), 0)
			return c.tstates(12)
		}
		c.ioOut(c.BC(), c.readReg8Plain(y))
		return c.tstates(12)
	case 2:
		rp := plainRP(c, p)
		if q == 0 {
			c.SetHL(c.sbc16(c.HL(), rp))
		} else {
			c.SetHL(c.adc16(c.HL(), rp))
		}
		return c.tstates(15)
	case 3:
		if q == 0 {
			c.writeWord(c.fetchWord(), plainRP(c, p))
		} else {
			setPlainRP(c, p, c.readWord(c.fetchWord()))
		}
		return c.tstates(20)
	case 4:
		c.neg()
		return c.tstates(8)
	case 5:
		c.PC = c.popWord()
		c.IFF1 = c.IFF2
		return c.tstates(14)
	case 6:
		c.IM = imTable[y]
		return c.tstates(8)
	default: // z==7
		return c.dispatchEDz7(y)
	}
}

// plainRP/setPlainRP read rp[p] without the DD/FD HL substitution (ED
// never sees the index register).
func plainRP(c *CPU, p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func setPlainRP(c *CPU, p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

func (c *CPU) dispatchEDz7(y byte) int {
	switch y {
	case 0:
		c.I = c.A
		return c.tstates(9)
	case 1:
		c.R = c.A
		return c.tstates(9)
	case 2:
		c.A = c.I
		c.F = (c.F & FlagC) | sz53p[c.A]
		if c.IFF2 {
			c.F |= FlagP
		} else {
			c.F &^= FlagP
		}
		return c.tstates(9)
	case 3:
		c.A = c.R
		c.F = (c.F & FlagC) | sz53p[c.A]
		if c.IFF2 {
			c.F |= FlagP
		} else {
			c.F &^= FlagP
		}
		return c.tstates(9)
	case 4:
		mem := c.readMem(c.HL())
		newA, newMem := c.rrd(mem)
		c.A = newA
		c.writeMem(c.HL(), newMem)
		return c.tstates(18)
	case 5:
		mem := c.readMem(c.HL())
		newA, newMem := c.rld(mem)
		c.A = newA
		c.writeMem(c.HL(), newMem)
		return c.tstates(18)
	default: // 6, 7
		return c.tstates(8)
	}
}

func (c *CPU) dispatchEDBlock(y, z byte) int {
	switch z {
	case 0: // LDI / LDD / LDIR / LDDR
		inc := y == 4 || y == 6
		c.blockMove(inc)
		if y >= 6 && c.BC() != 0 {
			c.PC -= 2
			return c.tstates(21)
		}
		return c.tstates(16)
	case 1: // CPI / CPD / CPIR / CPDR
		inc := y == 4 || y == 6
		repeat := c.blockCompare(inc)
		if y >= 6 && repeat {
			c.PC -= 2
			return c.tstates(21)
		}
		return c.tstates(16)
	case 2: // INI / IND / INIR / INDR
		inc := y == 4 || y == 6
		c.blockIn(inc)
		if y >= 6 && c.B != 0 {
			c.PC -= 2
			return c.tstates(21)
		}
		return c.tstates(16)
	default: // z==3: OUTI / OUTD / OTIR / OTDR
		inc := y == 4 || y == 6
		c.blockOut(inc)
		if y >= 6 && c.B != 0 {
			c.PC -= 2
			return c.tstates(21)
		}
		return c.tstates(16)
	}
}

// blockMove implements one LDI/LDD iteration.
func (c *CPU) blockMove(inc bool) {
	v := c.readMem(c.HL())
	c.writeMem(c.DE(), v)
	if inc {
		c.SetHL(c.HL() + 1)
		c.SetDE(c.DE() + 1)
	} else {
		c.SetHL(c.HL() - 1)
		c.SetDE(c.DE() - 1)
	}
	c.SetBC(c.BC() - 1)

	n := c.A + v
	f := c.F & (FlagS | FlagZ | FlagC)
	if c.BC() != 0 {
		f |= FlagP
	}
	f |= n & FlagX
	if n&0x02 != 0 {
		f |= FlagY
	}
	c.F = f
}

// blockCompare implements one CPI/CPD iteration and reports whether the
// repeat condition (BC≠0 and A≠(HL)) holds.
func (c *CPU) blockCompare(inc bool) bool {
	v := c.readMem(c.HL())
	if inc {
		c.SetHL(c.HL() + 1)
	} else {
		c.SetHL(c.HL() - 1)
	}
	c.SetBC(c.BC() - 1)

	a, vv := int(c.A), int(v)
	r := a - vv
	halfBorrow := (a^vv^r)&0x10 != 0
	res := byte(r)

	n := c.A - v
	if halfBorrow {
		n--
	}

	f := c.F & FlagC
	f |= FlagN
	if res == 0 {
		f |= FlagZ
	}
	if res&0x80 != 0 {
		f |= FlagS
	}
	if halfBorrow {
		f |= FlagH
	}
	if c.BC() != 0 {
		f |= FlagP
	}
	f |= n & FlagX
	if n&0x02 != 0 {
		f |= FlagY
	}
	c.F = f

	return c.BC() != 0 && res != 0
}

// blockIODecB decrements B, sets flags as for DEC B, then overrides NF
// with bit 7 of the transferred byte.
func (c *CPU) blockIODecB(transferred byte) {
	c.B = c.dec8(c.B)
	if transferred&0x80 != 0 {
		c.F |= FlagN
	} else {
		c.F &^= FlagN
	}
}

func (c *CPU) blockIn(inc bool) {
	v := c.ioIn(c.BC())
	c.writeMem(c.HL(), v)
	if inc {
		c.SetHL(c.HL() + 1)
	} else {
		c.SetHL(c.HL() - 1)
	}
	c.blockIODecB(v)
}

func (c *CPU) blockOut(inc bool) {
	v := c.readMem(c.HL())
	if inc {
		c.SetHL(c.HL() + 1)
	} else {
		c.SetHL(c.HL() - 1)
	}
	c.blockIODecB(v)
	c.ioOut(c.BC(), v)
}
