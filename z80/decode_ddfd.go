package z80

// decodeIndexPrefix handles one DD or FD prefix byte: idx names the
// index register it selects. It fetches the next byte (an M1 cycle,
// charged against R like any opcode fetch) and resolves it per §4.3:
// a CB byte routes to the DDCB/FDCB compound form, another DD/FD
// byte discards this one and takes over, an ED byte ignores the
// index prefix entirely, and anything else is an ordinary opcode
// whose HL/H/L operands are now substituted.
func (c *CPU) decodeIndexPrefix(idx index) int {
	c.cur = idx
	c.dispFetched = false
	op2 := c.fetchOpcode()

	switch op2 {
	case 0xCB:
		return c.decodeIndexedCB()
	case 0xDD:
		return c.tstates(4) + c.decodeIndexPrefix(indexIX)
	case 0xFD:
		return c.tstates(4) + c.decodeIndexPrefix(indexIY)
	case 0xED:
		// The index prefix is wasted: dispatchED already charges the
		// complete, unprefixed ED-instruction timing, and the caller of
		// decodeIndexPrefix has already charged the discarded DD/FD
		// byte's own 4 T-states.
		c.cur = indexHL
		inner := c.fetchOpcode()
		return c.dispatchED(inner)
	default:
		return c.dispatchIndexedOp(op2)
	}
}

// dispatchIndexedOp executes the opcode following a (surviving) DD/FD
// prefix. Opcodes that dereference (HL) as memory get exact, hand-coded
// timings and the "other operand reverts to plain H/L" exception from
// §4.3; everything else is simply the unprefixed handler's own timing,
// unmodified.
//
// The DD/FD byte's own 4 T-states are charged exactly once, by
// decodeIndexPrefix's caller, before it ever reaches this function — so
// every value returned here is the published total for the instruction
// MINUS that 4 (e.g. LD (IX+d),n is published at 19, so its branch
// charges 15; ADD IX,rr is published at 15, and dispatchBase's own
// ADD HL,rr timing of 11 is returned unchanged for it).
func (c *CPU) dispatchIndexedOp(op byte) int {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	switch {
	case x == 1 && z == 6 && y != 6: // LD r,(IX+d): published 19 = 4+15
		addr := c.effAddr()
		v := c.readMem(addr)
		c.writeReg8Plain(y, v)
		return c.tstates(15)
	case x == 1 && y == 6 && z != 6: // LD (IX+d),r: published 19 = 4+15
		addr := c.effAddr()
		v := c.readReg8Plain(z)
		c.writeMem(addr, v)
		return c.tstates(15)
	case x == 2 && z == 6: // ALU A,(IX+d): published 19 = 4+15
		addr := c.effAddr()
		v := c.readMem(addr)
		c.aluDispatch(y, v)
		return c.tstates(15)
	case x == 0 && z == 4 && y == 6: // INC (IX+d): published 23 = 4+19
		addr := c.effAddr()
		v := c.readMem(addr)
		c.writeMem(addr, c.inc8(v))
		return c.tstates(19)
	case x == 0 && z == 5 && y == 6: // DEC (IX+d): published 23 = 4+19
		addr := c.effAddr()
		v := c.readMem(addr)
		c.writeMem(addr, c.dec8(v))
		return c.tstates(19)
	case x == 0 && z == 6 && y == 6: // LD (IX+d),n: displacement before immediate; published 19 = 4+15
		d := c.effDisp()
		n := c.fetchByte()
		addr := uint16(int32(c.indexReg()) + int32(d))
		c.writeMem(addr, n)
		return c.tstates(15)
	default:
		return c.dispatchBase(op)
	}
}
