package z80

// RegisterSnapshot is a flat, comparable copy of a CPU's architectural
// registers (everything but the Bus, the EI-delay latch eiPending, and
// the in-flight decode scratch fields cur/dispFetched/disp, which only
// have meaning mid-instruction).
// It exists for trace logging and test assertions that want to diff two
// full register files at once rather than field by field.
type RegisterSnapshot struct {
	A, F, B, C, D, E, H, L         byte
	A2, F2, B2, C2, D2, E2, H2, L2 byte
	IX, IY                         uint16
	SP, PC                         uint16
	I, R                           byte
	IFF1, IFF2                     bool
	IM                             byte
	Halted                         bool
	Clocks                         uint64
}

// Snapshot captures the CPU's register file at this instant.
func (c *CPU) Snapshot() RegisterSnapshot {
	return RegisterSnapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		A2: c.A2, F2: c.F2, B2: c.B2, C2: c.C2, D2: c.D2, E2: c.E2, H2: c.H2, L2: c.L2,
		IX: c.IX, IY: c.IY,
		SP: c.SP, PC: c.PC,
		I: c.I, R: c.R,
		IFF1: c.IFF1, IFF2: c.IFF2,
		IM:     c.IM,
		Halted: c.Halted,
		Clocks: c.Clocks,
	}
}

// Equal reports whether two snapshots describe the same architectural
// state, comparing the full register file in one call instead of field
// by field.
func (s RegisterSnapshot) Equal(o RegisterSnapshot) bool {
	return s == o
}
