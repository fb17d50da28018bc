package z80

// execCB handles the unprefixed 0xCB entry point: fetch the CB-plane
// opcode (an M1 cycle) and dispatch it.
func (c *CPU) execCB() int {
	op := c.fetchOpcode()
	return c.dispatchCB(op)
}

// dispatchCB decodes one CB-plane opcode. The CB plane is never affected
// by an outstanding DD/FD prefix (that is the separate DDCB/FDCB
// compound form, decoded elsewhere), so every register access here uses
// the plain, non-substituting accessors.
func (c *CPU) dispatchCB(op byte) int {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	v := c.readReg8Plain(z)

	var r byte
	switch x {
	case 0:
		r = c.rotDispatch(y, v)
		c.writeReg8Plain(z, r)
	case 1:
		c.bitTest(y, v, v)
		if z == 6 {
			return c.tstates(12)
		}
		return c.tstates(8)
	case 2:
		r = resBit(y, v)
		c.writeReg8Plain(z, r)
	default: // x==3
		r = setBit(y, v)
		c.writeReg8Plain(z, r)
	}

	if z == 6 {
		return c.tstates(15)
	}
	return c.tstates(8)
}
