package z80

import "testing"

func TestIXSubstitutesHLFor16BitOps(t *testing.T) {
	cpu, _ := newRig(0, 0xDD, 0x21, 0x34, 0x12 /* LD IX,0x1234 */)
	cpu.Step()
	requireU16(t, "IX", cpu.IX, 0x1234)
	requireU16(t, "HL", cpu.HL(), 0)
}

func TestLDIXHImmediate(t *testing.T) {
	cpu, _ := newRig(0, 0xDD, 0x26, 0x7A /* LD IXH,0x7A */)
	cpu.Step()
	if byte(cpu.IX>>8) != 0x7A {
		t.Fatalf("IXH = 0x%02X, want 0x7A", byte(cpu.IX>>8))
	}
}

func TestLDIndirectIXPlusD(t *testing.T) {
	cpu, bus := newRig(0, 0xDD, 0x77, 0x05 /* LD (IX+5),A */)
	cpu.IX = 0x4000
	cpu.A = 0x99
	spent := cpu.Step()
	if bus.mem[0x4005] != 0x99 {
		t.Fatalf("mem[0x4005] = 0x%02X, want 0x99", bus.mem[0x4005])
	}
	if spent != 19 {
		t.Fatalf("spent = %d, want 19", spent)
	}
}

func TestLDHIndirectIXRevertsToPlainH(t *testing.T) {
	// LD H,(IX+d) must store into the real H, not IXH.
	cpu, bus := newRig(0, 0xDD, 0x66, 0x02 /* LD H,(IX+2) */)
	cpu.IX = 0x5000
	bus.mem[0x5002] = 0x77
	cpu.Step()
	requireU8(t, "H", cpu.H, 0x77)
	if byte(cpu.IX>>8) != 0x50 {
		t.Fatalf("IX high byte should be untouched, got 0x%02X", byte(cpu.IX>>8))
	}
}

// BIT n,(IX+d): YF/XF come from the high byte of (IX+d), independent of
// the memory value.
func TestBitOnIndexedAddressYXFromAddrHighByte(t *testing.T) {
	cpu, bus := newRig(0, 0xDD, 0xCB, 0x01, 0x46 /* BIT 0,(IX+1) */)
	cpu.IX = 0x2800 // high byte 0x28: bit5=1, bit3=1
	bus.mem[0x2801] = 0x00
	cpu.Step()
	requireFlag(t, "YF", cpu.F, FlagY, true)
	requireFlag(t, "XF", cpu.F, FlagX, true)
	requireFlag(t, "ZF", cpu.F, FlagZ, true)
}

// DDCB compound: rotate/RES/SET also stores the final byte into r[z] when z != 6.
func TestDDCBSideEffectCopiesIntoRegister(t *testing.T) {
	cpu, bus := newRig(0, 0xDD, 0xCB, 0x03, 0x00 /* RLC (IX+3),B */)
	cpu.IX = 0x3000
	bus.mem[0x3003] = 0x81
	cpu.Step()
	if bus.mem[0x3003] != 0x03 {
		t.Fatalf("mem = 0x%02X, want 0x03", bus.mem[0x3003])
	}
	requireU8(t, "B", cpu.B, 0x03)
}

// A run of k>=1 identical prefix bytes followed by an unprefixed opcode
// behaves the same as a single prefix (architecturally; T-states and R
// both include the extra discarded bytes, which this test does not
// compare).
func TestDDIdempotenceAcrossRepeatedPrefix(t *testing.T) {
	single, _ := newRig(0, 0xDD, 0x21, 0x34, 0x12 /* LD IX,0x1234 */)
	single.Step()

	repeated, _ := newRig(0, 0xDD, 0xDD, 0xDD, 0x21, 0x34, 0x12)
	repeated.Step()

	if single.IX != repeated.IX {
		t.Fatalf("IX diverges: single=0x%04X repeated=0x%04X", single.IX, repeated.IX)
	}
	if single.PC != 4 {
		t.Fatalf("single PC = %d, want 4", single.PC)
	}
	if repeated.PC != 6 {
		t.Fatalf("repeated PC = %d, want 6", repeated.PC)
	}
}

func TestDDThenFDLastPrefixWins(t *testing.T) {
	cpu, _ := newRig(0, 0xDD, 0xFD, 0x21, 0x34, 0x12 /* ...FD then LD IY,nn */)
	cpu.Step()
	requireU16(t, "IY", cpu.IY, 0x1234)
	requireU16(t, "IX", cpu.IX, 0)
}

func TestDDFollowedByEDIgnoresPrefix(t *testing.T) {
	cpu, _ := newRig(0, 0xDD, 0xED, 0x44 /* NEG, with a wasted DD */)
	cpu.A = 0x80
	cpu.Step()
	requireU8(t, "A", cpu.A, 0x80)
	requireFlag(t, "CF", cpu.F, FlagC, true)
}

// Clocks must account for every discarded DD/FD byte, matching the
// T-states the Step call returns.
func TestClocksMatchReturnedTStatesAcrossPrefixChain(t *testing.T) {
	cpu, _ := newRig(0, 0xDD, 0xDD, 0x21, 0x34, 0x12)
	spent := cpu.Step()
	if uint64(spent) != cpu.Clocks {
		t.Fatalf("spent=%d but Clocks=%d", spent, cpu.Clocks)
	}
	if spent != 4+14 {
		t.Fatalf("spent = %d, want %d", spent, 4+14)
	}
}
