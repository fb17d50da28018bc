package z80

import "testing"

// S3: DJNZ takes 13 T-states when the branch is taken and 8 when it falls through.
func TestDJNZTakenVsNotTaken(t *testing.T) {
	cpu, _ := newRig(0, 0x10, 0x02 /* DJNZ +2 */)
	cpu.B = 2
	spent := cpu.Step()
	if spent != 13 {
		t.Fatalf("taken DJNZ spent = %d, want 13", spent)
	}
	requireU8(t, "B", cpu.B, 1)
	requireU16(t, "PC", cpu.PC, 4) // 2 (after opcode+disp) + 2 displacement

	cpu2, _ := newRig(0, 0x10, 0x02)
	cpu2.B = 1
	spent2 := cpu2.Step()
	if spent2 != 8 {
		t.Fatalf("untaken DJNZ spent = %d, want 8", spent2)
	}
	requireU8(t, "B", cpu2.B, 0)
	requireU16(t, "PC", cpu2.PC, 2)
}

func TestJRConditionalTimings(t *testing.T) {
	cpu, _ := newRig(0, 0x28, 0x05 /* JR Z,+5 */)
	cpu.F |= FlagZ
	spent := cpu.Step()
	if spent != 12 {
		t.Fatalf("taken JR Z spent = %d, want 12", spent)
	}

	cpu2, _ := newRig(0, 0x28, 0x05)
	cpu2.F &^= FlagZ
	spent2 := cpu2.Step()
	if spent2 != 7 {
		t.Fatalf("untaken JR Z spent = %d, want 7", spent2)
	}
}

func TestJRUnconditionalIsAlways12(t *testing.T) {
	cpu, _ := newRig(0, 0x18, 0x00 /* JR +0 */)
	spent := cpu.Step()
	if spent != 12 {
		t.Fatalf("spent = %d, want 12", spent)
	}
}

func TestJPConditionalAlwaysFetchesOperandAt10(t *testing.T) {
	cpu, _ := newRig(0, 0xC2, 0x00, 0x10 /* JP NZ,0x1000 */)
	cpu.F |= FlagZ // condition false, no jump, but operand still consumed
	spent := cpu.Step()
	if spent != 10 {
		t.Fatalf("spent = %d, want 10", spent)
	}
	requireU16(t, "PC", cpu.PC, 3)
}

func TestCallConditionalTimings(t *testing.T) {
	cpu, _ := newRig(0, 0xC4, 0x00, 0x10 /* CALL NZ,0x1000 */)
	cpu.SP = 0x8000
	cpu.F &^= FlagZ
	spent := cpu.Step()
	if spent != 17 {
		t.Fatalf("taken CALL spent = %d, want 17", spent)
	}
	requireU16(t, "PC", cpu.PC, 0x1000)

	cpu2, _ := newRig(0, 0xC4, 0x00, 0x10)
	cpu2.SP = 0x8000
	cpu2.F |= FlagZ
	spent2 := cpu2.Step()
	if spent2 != 10 {
		t.Fatalf("untaken CALL spent = %d, want 10", spent2)
	}
	requireU16(t, "PC", cpu2.PC, 3)
}

func TestRetConditionalTimings(t *testing.T) {
	cpu, bus := newRig(0, 0xC0 /* RET NZ */)
	cpu.SP = 0x8000
	bus.mem[0x8000], bus.mem[0x8001] = 0x34, 0x12
	cpu.F &^= FlagZ
	spent := cpu.Step()
	if spent != 11 {
		t.Fatalf("taken RET spent = %d, want 11", spent)
	}
	requireU16(t, "PC", cpu.PC, 0x1234)

	cpu2, _ := newRig(0, 0xC0)
	cpu2.SP = 0x8000
	cpu2.F |= FlagZ
	spent2 := cpu2.Step()
	if spent2 != 5 {
		t.Fatalf("untaken RET spent = %d, want 5", spent2)
	}
}

func TestUnconditionalRetIsAlways10(t *testing.T) {
	cpu, bus := newRig(0, 0xC9 /* RET */)
	cpu.SP = 0x8000
	bus.mem[0x8000], bus.mem[0x8001] = 0x78, 0x56
	spent := cpu.Step()
	if spent != 10 {
		t.Fatalf("spent = %d, want 10", spent)
	}
	requireU16(t, "PC", cpu.PC, 0x5678)
}
