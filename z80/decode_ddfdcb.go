package z80

// decodeIndexedCB handles the DDCB/FDCB compound form: prefix (DD/FD),
// CB, signed displacement, opcode. The displacement and opcode bytes
// are read with fetchByte, not fetchOpcode — only the DD/FD byte and
// the CB byte that routed here are M1 cycles that advance R.
//
// The returned T-states do not include the DD/FD byte itself; the
// caller (decodeIndexPrefix's caller) already charges that separately,
// so the published 23/20 T-state totals are 4 (DD/FD) + what this
// function returns.
func (c *CPU) decodeIndexedCB() int {
	d := int16(int8(c.fetchByte()))
	op := c.fetchByte()

	addr := uint16(int32(c.indexReg()) + int32(d))
	v := c.readMem(addr)

	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	if x == 1 { // BIT n,(IX+d): YF/XF come from the high byte of addr.
		c.bitTest(y, v, byte(addr>>8))
		return c.tstates(16)
	}

	var r byte
	switch x {
	case 0:
		r = c.rotDispatch(y, v)
	case 2:
		r = resBit(y, v)
	default: // 3
		r = setBit(y, v)
	}
	c.writeMem(addr, r)
	if z != 6 {
		c.writeReg8Plain(z, r)
	}
	return c.tstates(19)
}
